package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"bookshop/internal/cart"
	"bookshop/internal/catalog"
	"bookshop/internal/entity"
	"bookshop/internal/httpx"
)

// CartHandler serves the cart views. It reads the catalog only to take
// a snapshot of a book at add time; the two stores never reference each
// other.
type CartHandler struct {
	cart  *cart.Store
	books *catalog.Store
}

func NewCartHandler(c *cart.Store, books *catalog.Store) *CartHandler {
	return &CartHandler{cart: c, books: books}
}

// CartView is the full cart state returned by every cart endpoint.
type CartView struct {
	Items      []entity.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int               `json:"totalPrice"`
}

func (h *CartHandler) view() CartView {
	summary := h.cart.Summary()
	return CartView{
		Items:      h.cart.Lines(),
		TotalItems: summary.TotalItems,
		TotalPrice: summary.TotalPrice,
	}
}

// AddItemInput is the payload for putting a book in the cart.
type AddItemInput struct {
	BookID int `json:"book_id" validate:"required,gte=1"`
}

// SetQuantityInput is the payload for setting a line's quantity. Zero
// and negative values remove the line.
type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// @Summary View cart
// @Tags cart
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.view())
}

// @Summary Add to cart
// @Description Add one copy of a book; an existing line grows by 1
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var in AddItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if errs := ValidateStruct(in); errs != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "book_id must be a positive integer", nil)
		return
	}

	book, found, err := h.books.Get(r.Context(), in.BookID)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not load the catalog", nil)
		return
	}
	if !found {
		httpx.JSONError(r, w, http.StatusNotFound, "not_found", "Book not found", nil)
		return
	}

	if err := h.cart.Add(r.Context(), book); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not save the cart", nil)
		return
	}
	httpx.JSONSuccess(r, w, h.view())
}

// @Summary Set line quantity
// @Description Set a line's quantity; zero or below removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Router /cart/items/{id} [put]
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := cartItemID(w, r)
	if !ok {
		return
	}

	var in SetQuantityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}

	// Absent lines are a silent no-op, matching the store contract.
	if _, err := h.cart.SetQuantity(r.Context(), id, in.Quantity); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not save the cart", nil)
		return
	}
	httpx.JSONSuccess(r, w, h.view())
}

// @Summary Remove from cart
// @Tags cart
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := cartItemID(w, r)
	if !ok {
		return
	}

	if _, err := h.cart.Remove(r.Context(), id); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not save the cart", nil)
		return
	}
	httpx.JSONSuccess(r, w, h.view())
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "store_error", "Could not save the cart", nil)
		return
	}
	httpx.JSONSuccess(r, w, h.view())
}

func cartItemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_id", "Book id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
