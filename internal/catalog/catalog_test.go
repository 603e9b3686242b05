package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"bookshop/internal/blob"
	"bookshop/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyStore(t *testing.T) (*Store, *blob.Memory) {
	t.Helper()
	blobs := blob.NewMemory()
	require.NoError(t, blobs.Put(context.Background(), Key, []byte("[]")))
	return New(blobs), blobs
}

func sampleBook(title string, price int) entity.Book {
	return entity.Book{
		Title:      title,
		Author:     "Some Author",
		Price:      price,
		CoverImage: "https://example.com/cover.jpg",
		Category:   "Fiction",
	}
}

func TestAll_SeedsOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemory()
	store := New(blobs)

	books, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 8)
	assert.Equal(t, "The Memory of Forgotten Things", books[0].Title)
	assert.Equal(t, 1, books[0].ID)
	assert.Equal(t, 8, books[7].ID)

	// The seed must now be persisted, not just returned.
	raw, err := blobs.Get(ctx, Key)
	require.NoError(t, err)
	var persisted []entity.Book
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, books, persisted)
}

func TestAll_RecoversFromCorruptBlob(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemory()
	require.NoError(t, blobs.Put(ctx, Key, []byte("{not json")))
	store := New(blobs)

	books, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 8)

	// The blob must be repaired in place.
	raw, err := blobs.Get(ctx, Key)
	require.NoError(t, err)
	var persisted []entity.Book
	assert.NoError(t, json.Unmarshal(raw, &persisted))
}

func TestAdd_AssignsIDsFromLiveSet(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	a, err := store.Add(ctx, sampleBook("A", 100))
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)

	b, err := store.Add(ctx, sampleBook("B", 200))
	require.NoError(t, err)
	assert.Equal(t, 2, b.ID)

	found, err := store.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)

	// Max of the remaining ids {2} plus one, not a separate counter.
	c, err := store.Add(ctx, sampleBook("C", 300))
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)
}

func TestAdd_IgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	in := sampleBook("A", 100)
	in.ID = 99
	created, err := store.Add(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestAdd_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	seen := make(map[int]bool)
	for i := 0; i < 20; i++ {
		created, err := store.Add(ctx, sampleBook("Book", 100))
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "id %d assigned twice", created.ID)
		seen[created.ID] = true
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	created, err := store.Add(ctx, sampleBook("A", 100))
	require.NoError(t, err)

	created.Title = "A, revised"
	created.Price = 150

	_, found, err := store.Update(ctx, created)
	require.NoError(t, err)
	assert.True(t, found)
	afterOnce, err := store.All(ctx)
	require.NoError(t, err)

	_, found, err = store.Update(ctx, created)
	require.NoError(t, err)
	assert.True(t, found)
	afterTwice, err := store.All(ctx)
	require.NoError(t, err)

	assert.Equal(t, afterOnce, afterTwice)
}

func TestUpdate_MissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	_, err := store.Add(ctx, sampleBook("A", 100))
	require.NoError(t, err)
	before, err := store.All(ctx)
	require.NoError(t, err)

	ghost := sampleBook("Ghost", 999)
	ghost.ID = 42
	_, found, err := store.Update(ctx, ghost)
	require.NoError(t, err)
	assert.False(t, found)

	after, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDelete_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	created, err := store.Add(ctx, sampleBook("A", 100))
	require.NoError(t, err)

	found, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)

	books, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	store, _ := emptyStore(t)

	created, err := store.Add(ctx, sampleBook("A", 100))
	require.NoError(t, err)

	got, found, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created, got)

	_, found, err = store.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_SharesBlobAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store, blobs := emptyStore(t)

	created, err := store.Add(ctx, sampleBook("A", 100))
	require.NoError(t, err)

	other := New(blobs)
	got, found, err := other.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created, got)
}
