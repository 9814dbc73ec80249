package cache

import "errors"

// ErrQuotaExceeded reports that a write would exceed the store's byte
// budget. It is the one storage failure the cache reacts to (by evicting
// its namespace and retrying once).
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store is the capability a cache needs from its backing storage: a finite
// key/value space addressable by string keys and enumerable by prefix.
// Implementations report quota pressure via ErrQuotaExceeded so the
// eviction policy does not depend on backend-specific error shapes.
type Store interface {
	// Get returns the stored value, or false if the key is absent.
	Get(key string) ([]byte, bool)
	// Set writes a whole-entry replacement. Returns ErrQuotaExceeded when
	// the write would exceed the byte budget.
	Set(key string, value []byte) error
	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(key string) error
	// Keys lists every stored key with the given prefix.
	Keys(prefix string) ([]string, error)
}
