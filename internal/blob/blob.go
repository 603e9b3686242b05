// Package blob provides a keyed blob store: an opaque byte value under a
// fixed string key. It is the only durability mechanism in the system;
// both the catalog and the cart serialize their whole record set into a
// single blob and rewrite it on every mutation.
package blob

import (
	"context"
	"errors"
)

// ErrNoKey is returned by Get when no value exists under the key.
var ErrNoKey = errors.New("blob: key not found")

// Store is the persistence port shared by the catalog and cart stores.
// Implementations do not coordinate across processes; the last full
// write under a key wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
