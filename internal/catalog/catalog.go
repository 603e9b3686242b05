// Package catalog owns the book record set: CRUD semantics, id
// assignment, and persistence as a single JSON blob.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"bookshop/internal/blob"
	"bookshop/internal/entity"
)

// Key is the blob key the catalog persists under.
const Key = "bookshop_books"

// Store is the source of truth for the book list. Every operation loads
// the full set, mutates it in memory, and rewrites the full set. The
// mutex serializes writers within this process; across processes the
// last full write wins.
type Store struct {
	mu    sync.Mutex
	blobs blob.Store
}

func New(blobs blob.Store) *Store {
	return &Store{blobs: blobs}
}

// load reads the persisted set. An absent blob seeds the fixed sample
// data; a corrupt blob is logged and reset to the seed as well, so a
// bad write can never wedge the catalog.
func (s *Store) load(ctx context.Context) ([]entity.Book, error) {
	raw, err := s.blobs.Get(ctx, Key)
	if errors.Is(err, blob.ErrNoKey) {
		return s.reset(ctx)
	}
	if err != nil {
		return nil, err
	}

	var books []entity.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		log.Printf("catalog: corrupt blob, reseeding: key=%s error=%v", Key, err)
		return s.reset(ctx)
	}
	return books, nil
}

func (s *Store) save(ctx context.Context, books []entity.Book) error {
	raw, err := json.Marshal(books)
	if err != nil {
		return err
	}
	return s.blobs.Put(ctx, Key, raw)
}

// reset writes the seed set, replacing whatever is stored.
func (s *Store) reset(ctx context.Context) ([]entity.Book, error) {
	books := SeedBooks()
	if err := s.save(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

// Reset discards the stored set and reseeds it.
func (s *Store) Reset(ctx context.Context) ([]entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset(ctx)
}

// All returns the full record set in storage-insertion order.
func (s *Store) All(ctx context.Context) ([]entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the book with the given id, reporting whether it exists.
func (s *Store) Get(ctx context.Context, id int) (entity.Book, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load(ctx)
	if err != nil {
		return entity.Book{}, false, err
	}
	for _, b := range books {
		if b.ID == id {
			return b, true, nil
		}
	}
	return entity.Book{}, false, nil
}

// Add assigns a new id to the given book, appends it, and persists the
// set. The id is max(existing ids)+1, or 1 when the set is empty --
// computed from the live set, never a separate counter, so ids of
// deleted records can be reused.
func (s *Store) Add(ctx context.Context, b entity.Book) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load(ctx)
	if err != nil {
		return entity.Book{}, err
	}

	maxID := 0
	for _, existing := range books {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	b.ID = maxID + 1

	books = append(books, b)
	if err := s.save(ctx, books); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

// Update replaces the record whose id matches, reporting whether a
// record was found. When no record matches, the set is left unchanged
// and nothing is persisted.
func (s *Store) Update(ctx context.Context, b entity.Book) (entity.Book, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load(ctx)
	if err != nil {
		return entity.Book{}, false, err
	}

	found := false
	for i := range books {
		if books[i].ID == b.ID {
			books[i] = b
			found = true
			break
		}
	}
	if !found {
		return b, false, nil
	}

	if err := s.save(ctx, books); err != nil {
		return entity.Book{}, false, err
	}
	return b, true, nil
}

// Delete removes the record whose id matches, reporting whether a
// record was found. Deleting an absent id is a no-op.
func (s *Store) Delete(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	kept := books[:0]
	found := false
	for _, b := range books {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return false, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
