package http

import (
	"net/http"
	"testing"

	"bookshop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookPayload(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":      title,
		"author":     "Some Author",
		"price":      500,
		"coverImage": "https://example.com/cover.jpg",
		"category":   "Fiction",
	}
}

func TestBookList(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name      string
		path      string
		wantCount int
	}{
		{"full catalog", "/books", 8},
		{"category filter", "/books?category=Fantasy", 2},
		{"category with no matches", "/books?category=Cooking", 0},
		{"search by title", "/books?q=circe", 1},
		{"search by author", "/books?q=madeline", 2},
		{"search by category", "/books?q=thriller", 1},
		{"search with no matches", "/books?q=zzzz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(testutil.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, resp.Code)

			data, _ := resp.Body["data"].([]interface{})
			assert.Len(t, data, tt.wantCount)
		})
	}
}

func TestBookGet(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(testutil.NewRequest(http.MethodGet, "/books/1", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	data, _ := resp.Body["data"].(map[string]interface{})
	assert.Equal(t, "The Memory of Forgotten Things", data["title"])

	resp = env.do(testutil.NewRequest(http.MethodGet, "/books/42", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = env.do(testutil.NewRequest(http.MethodGet, "/books/abc", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBookCreate_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(testutil.NewRequest(http.MethodPost, "/books", bookPayload("New Book")))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = env.do(testutil.NewRequestWithAuth(http.MethodPost, "/books", bookPayload("New Book"), userToken()))
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestBookCreate(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(testutil.NewRequestWithAuth(http.MethodPost, "/books", bookPayload("New Book"), adminToken()))
	require.Equal(t, http.StatusCreated, resp.Code)

	data, _ := resp.Body["data"].(map[string]interface{})
	assert.Equal(t, "New Book", data["title"])
	// Seed ids run 1..8, so the store assigns 9.
	assert.Equal(t, float64(9), data["id"])
}

func TestBookCreate_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing title", map[string]interface{}{"author": "A", "price": 100, "category": "Fiction"}},
		{"missing author", map[string]interface{}{"title": "T", "price": 100, "category": "Fiction"}},
		{"missing category", map[string]interface{}{"title": "T", "author": "A", "price": 100}},
		{"negative price", map[string]interface{}{"title": "T", "author": "A", "price": -1, "category": "Fiction"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(testutil.NewRequestWithAuth(http.MethodPost, "/books", tt.payload, adminToken()))
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestBookUpdate(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(testutil.NewRequestWithAuth(http.MethodPut, "/books/1", bookPayload("Renamed"), adminToken()))
	require.Equal(t, http.StatusOK, resp.Code)
	data, _ := resp.Body["data"].(map[string]interface{})
	assert.Equal(t, "Renamed", data["title"])
	assert.Equal(t, float64(1), data["id"])

	resp = env.do(testutil.NewRequestWithAuth(http.MethodPut, "/books/42", bookPayload("Ghost"), adminToken()))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBookDelete(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(testutil.NewRequestWithAuth(http.MethodDelete, "/books/1", nil, adminToken()))
	assert.Equal(t, http.StatusNoContent, resp.Code)

	// Second delete of the same id finds nothing.
	resp = env.do(testutil.NewRequestWithAuth(http.MethodDelete, "/books/1", nil, adminToken()))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = env.do(testutil.NewRequest(http.MethodGet, "/books", nil))
	data, _ := resp.Body["data"].([]interface{})
	assert.Len(t, data, 7)
}
