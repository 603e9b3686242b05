package http

import (
	"net/http"
	"testing"

	"bookshop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addItem(t *testing.T, env testEnv, bookID int) testutil.RecordResponse {
	t.Helper()
	return env.do(testutil.NewRequest(http.MethodPost, "/cart/items", map[string]interface{}{"book_id": bookID}))
}

func cartData(resp testutil.RecordResponse) map[string]interface{} {
	data, _ := resp.Body["data"].(map[string]interface{})
	return data
}

func TestCartGet_Empty(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(testutil.NewRequest(http.MethodGet, "/cart", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	data := cartData(resp)
	assert.Equal(t, float64(0), data["totalItems"])
	assert.Equal(t, float64(0), data["totalPrice"])
}

func TestCartAddItem(t *testing.T) {
	env := newTestEnv(t)

	// Seed book 5 is Atomic Habits at 450.
	resp := addItem(t, env, 5)
	require.Equal(t, http.StatusOK, resp.Code)

	data := cartData(resp)
	items, _ := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(1), data["totalItems"])
	assert.Equal(t, float64(450), data["totalPrice"])

	// Adding the same book again grows the line, not the line count.
	resp = addItem(t, env, 5)
	data = cartData(resp)
	items, _ = data["items"].([]interface{})
	require.Len(t, items, 1)
	line, _ := items[0].(map[string]interface{})
	assert.Equal(t, float64(2), line["quantity"])
	assert.Equal(t, float64(2), data["totalItems"])
	assert.Equal(t, float64(900), data["totalPrice"])
}

func TestCartAddItem_UnknownBook(t *testing.T) {
	env := newTestEnv(t)

	resp := addItem(t, env, 42)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCartAddItem_BadPayload(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(testutil.NewRequest(http.MethodPost, "/cart/items", map[string]interface{}{"book_id": 0}))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCartSnapshotOutlivesCatalogEdits(t *testing.T) {
	env := newTestEnv(t)

	resp := addItem(t, env, 5)
	require.Equal(t, http.StatusOK, resp.Code)

	// Deleting the book from the catalog leaves the cart line intact.
	resp = env.do(testutil.NewRequestWithAuth(http.MethodDelete, "/books/5", nil, adminToken()))
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = env.do(testutil.NewRequest(http.MethodGet, "/cart", nil))
	data := cartData(resp)
	items, _ := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(450), data["totalPrice"])
}

func TestCartSetQuantity(t *testing.T) {
	env := newTestEnv(t)

	addItem(t, env, 5)
	addItem(t, env, 5)

	resp := env.do(testutil.NewRequest(http.MethodPut, "/cart/items/5", map[string]interface{}{"quantity": 1}))
	require.Equal(t, http.StatusOK, resp.Code)

	data := cartData(resp)
	assert.Equal(t, float64(1), data["totalItems"])
	assert.Equal(t, float64(450), data["totalPrice"])
}

func TestCartSetQuantity_ZeroRemoves(t *testing.T) {
	env := newTestEnv(t)

	addItem(t, env, 5)
	resp := env.do(testutil.NewRequest(http.MethodPut, "/cart/items/5", map[string]interface{}{"quantity": 0}))
	require.Equal(t, http.StatusOK, resp.Code)

	data := cartData(resp)
	items, _ := data["items"].([]interface{})
	assert.Empty(t, items)
	assert.Equal(t, float64(0), data["totalItems"])
}

func TestCartSetQuantity_AbsentLineIsSilent(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(testutil.NewRequest(http.MethodPut, "/cart/items/7", map[string]interface{}{"quantity": 3}))
	assert.Equal(t, http.StatusOK, resp.Code)
	data := cartData(resp)
	assert.Equal(t, float64(0), data["totalItems"])
}

func TestCartRemoveItem(t *testing.T) {
	env := newTestEnv(t)

	addItem(t, env, 5)
	addItem(t, env, 6)

	resp := env.do(testutil.NewRequest(http.MethodDelete, "/cart/items/5", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	data := cartData(resp)
	items, _ := data["items"].([]interface{})
	require.Len(t, items, 1)

	// Removing an absent line is a silent no-op.
	resp = env.do(testutil.NewRequest(http.MethodDelete, "/cart/items/5", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestCartClear(t *testing.T) {
	env := newTestEnv(t)

	addItem(t, env, 5)
	addItem(t, env, 6)

	resp := env.do(testutil.NewRequest(http.MethodDelete, "/cart", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	data := cartData(resp)
	items, _ := data["items"].([]interface{})
	assert.Empty(t, items)
	assert.Equal(t, float64(0), data["totalItems"])
	assert.Equal(t, float64(0), data["totalPrice"])
}
