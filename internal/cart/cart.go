// Package cart owns the shopping-cart line items and their derived
// totals. Lines are held in memory and re-persisted in full after every
// mutation; totals are recomputed from scratch each time.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"bookshop/internal/blob"
	"bookshop/internal/entity"
)

// Key is the blob key the cart persists under.
const Key = "cart"

// Store holds the current cart. A single Store instance is shared by
// every handler, so all views observe the same lines and totals.
type Store struct {
	mu      sync.RWMutex
	blobs   blob.Store
	lines   []entity.CartLine
	summary entity.CartSummary
}

// New loads any previously persisted cart. A missing blob means an
// empty cart; a corrupt blob is logged and also treated as empty, it
// never propagates to the caller.
func New(ctx context.Context, blobs blob.Store) *Store {
	s := &Store{blobs: blobs}

	raw, err := blobs.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, blob.ErrNoKey) {
			log.Printf("cart: load failed, starting empty: key=%s error=%v", Key, err)
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.lines); err != nil {
		log.Printf("cart: corrupt blob, starting empty: key=%s error=%v", Key, err)
		s.lines = nil
		return s
	}
	s.summary = entity.Summarize(s.lines)
	return s
}

// Lines returns a copy of the current line set in insertion order.
func (s *Store) Lines() []entity.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Summary returns the current derived totals.
func (s *Store) Summary() entity.CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// persist recomputes both totals and writes the full line set. The
// totals are recomputed before the write so Lines and Summary stay in
// step even when the backend rejects the write. Called with the write
// lock held after every mutation.
func (s *Store) persist(ctx context.Context) error {
	s.summary = entity.Summarize(s.lines)

	raw, err := json.Marshal(s.lines)
	if err != nil {
		return err
	}
	return s.blobs.Put(ctx, Key, raw)
}

// Add puts a book in the cart. If a line for the book already exists
// its quantity grows by exactly 1; otherwise a new line with quantity 1
// is appended. Existing line order is preserved.
func (s *Store) Add(ctx context.Context, b entity.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == b.ID {
			s.lines[i].Quantity++
			return s.persist(ctx)
		}
	}
	s.lines = append(s.lines, entity.CartLine{Book: b, Quantity: 1})
	return s.persist(ctx)
}

// Remove drops the line with the given book id, reporting whether a
// line was found. Removing an absent id changes nothing.
func (s *Store) Remove(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, id)
}

func (s *Store) remove(ctx context.Context, id int) (bool, error) {
	kept := s.lines[:0]
	found := false
	for _, l := range s.lines {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return false, nil
	}
	s.lines = kept
	return true, s.persist(ctx)
}

// SetQuantity sets a line's quantity to exactly quantity. A quantity of
// zero or below removes the line, identical to Remove.
func (s *Store) SetQuantity(ctx context.Context, id, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.remove(ctx, id)
	}
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			return true, s.persist(ctx)
		}
	}
	return false, nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.persist(ctx)
}
