package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"bookshop/internal/catalog"
	"bookshop/internal/entity"
	"bookshop/internal/httpx"
)

type BookHandler struct {
	books *catalog.Store
}

func NewBookHandler(books *catalog.Store) *BookHandler {
	return &BookHandler{books: books}
}

// BookInput is the payload for creating or updating a book.
type BookInput struct {
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Price      int    `json:"price" validate:"gte=0"`
	CoverImage string `json:"coverImage"`
	Category   string `json:"category" validate:"required"`
}

func (in BookInput) book() entity.Book {
	return entity.Book{
		Title:      in.Title,
		Author:     in.Author,
		Price:      in.Price,
		CoverImage: in.CoverImage,
		Category:   in.Category,
	}
}

// @Summary List books
// @Description Get the catalog, optionally filtered by category or a search query
// @Tags books
// @Produce json
// @Param category query string false "Filter by exact category"
// @Param q query string false "Match against title, author, and category"
// @Success 200 {object} httpx.SuccessResponse
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.All(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not load the catalog", nil)
		return
	}

	category := r.URL.Query().Get("category")
	q := strings.ToLower(r.URL.Query().Get("q"))

	filtered := books[:0]
	for _, b := range books {
		if category != "" && b.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) &&
			!strings.Contains(strings.ToLower(b.Category), q) {
			continue
		}
		filtered = append(filtered, b)
	}

	httpx.JSONSuccessWithMeta(r, w, filtered, map[string]interface{}{"total": len(filtered)})
}

// @Summary Get book
// @Description Get a single book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	book, found, err := h.books.Get(r.Context(), id)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not load the catalog", nil)
		return
	}
	if !found {
		httpx.JSONError(r, w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}
	httpx.JSONSuccess(r, w, book)
}

// @Summary Create book
// @Description Add a book to the catalog; the id is assigned by the store
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeBookInput(w, r)
	if !ok {
		return
	}

	created, err := h.books.Add(r.Context(), in.book())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not save the book", nil)
		return
	}
	httpx.JSONCreated(r, w, created)
}

// @Summary Update book
// @Description Replace all fields of a book except its id
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}
	in, ok := decodeBookInput(w, r)
	if !ok {
		return
	}

	book := in.book()
	book.ID = id
	updated, found, err := h.books.Update(r.Context(), book)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not save the book", nil)
		return
	}
	if !found {
		httpx.JSONError(r, w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}
	httpx.JSONSuccess(r, w, updated)
}

// @Summary Delete book
// @Description Remove a book from the catalog
// @Tags books
// @Param id path int true "Book id"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	found, err := h.books.Delete(r.Context(), id)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not delete the book", nil)
		return
	}
	if !found {
		httpx.JSONError(r, w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}
	httpx.JSONNoContent(w)
}

func bookID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/books/")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_id", "Book id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

func decodeBookInput(w http.ResponseWriter, r *http.Request) (BookInput, bool) {
	var in BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return in, false
	}
	if errs := ValidateStruct(in); errs != nil {
		details := make([]httpx.ErrorDetail, 0, len(errs))
		for _, e := range errs {
			details = append(details, httpx.ErrorDetail{Field: e.Field, Message: e.Message})
		}
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "Invalid book payload", details)
		return in, false
	}
	return in, true
}
