package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sdutta9/mealscan/internal/nutrition"
)

// SchemaVersion is the cache namespace version. Any field addition, removal,
// or type change in nutrition.AnalysisResult must increment it so stale
// incompatible entries are never read as valid.
const SchemaVersion = 3

// namespaceRoot is shared by every schema version; Clear sweeps all of them.
const namespaceRoot = "analysis_v"

// Namespace returns the key prefix for a schema version.
func Namespace(version int) string {
	return fmt.Sprintf("%s%d_", namespaceRoot, version)
}

// Entry is the stored representation of a cached result.
type Entry struct {
	Timestamp int64                    `json:"timestamp"`
	Data      nutrition.AnalysisResult `json:"data"`
}

// Cache stores normalized analysis results keyed by image fingerprint.
// Entries are immutable once written; a fingerprint collision overwrites
// silently.
type Cache struct {
	store   Store
	prefix  string
	enabled bool
}

// New creates a Cache over store at the current SchemaVersion.
func New(store Store) *Cache {
	return NewVersioned(store, SchemaVersion)
}

// NewVersioned creates a Cache pinned to an explicit schema version.
func NewVersioned(store Store, version int) *Cache {
	return &Cache{store: store, prefix: Namespace(version), enabled: true}
}

// Disabled returns a Cache on which every operation is a no-op.
func Disabled() *Cache {
	return &Cache{}
}

// Enabled reports whether the cache is active.
func (c *Cache) Enabled() bool { return c.enabled }

// Get returns the cached result for a fingerprint. A malformed stored value
// is discarded and treated as a miss; Get never fails.
func (c *Cache) Get(fingerprint string) (*nutrition.AnalysisResult, bool) {
	if !c.enabled {
		return nil, false
	}
	data, ok := c.store.Get(c.prefix + fingerprint)
	if !ok {
		return nil, false
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.store.Delete(c.prefix + fingerprint)
		return nil, false
	}
	return &entry.Data, true
}

// Put stores a normalized result under the fingerprint, best-effort. On
// quota pressure it evicts the entire namespace and retries the write once;
// if the retry also fails the write is abandoned. Caching is a performance
// optimization, never a correctness requirement, so Put reports nothing.
func (c *Cache) Put(fingerprint string, result *nutrition.AnalysisResult) {
	if !c.enabled || result == nil {
		return
	}
	entry := Entry{
		Timestamp: time.Now().Unix(),
		Data:      *result,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	key := c.prefix + fingerprint
	err = c.store.Set(key, data)
	if err == nil || !errors.Is(err, ErrQuotaExceeded) {
		return
	}
	c.evictNamespace()
	c.store.Set(key, data)
}

// evictNamespace deletes every key under this cache's prefix. Deleting an
// already-deleted key is a no-op, so concurrent sweeps are safe.
func (c *Cache) evictNamespace() {
	keys, err := c.store.Keys(c.prefix)
	if err != nil {
		return
	}
	for _, k := range keys {
		c.store.Delete(k)
	}
}

// Stats describes cache occupancy for the current schema version.
type Stats struct {
	Namespace  string `json:"namespace"`
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"totalBytes"`
	Stale      int    `json:"stale"` // entries left over from older schema versions
}

// GetStats returns occupancy information.
func (c *Cache) GetStats() (Stats, error) {
	stats := Stats{Namespace: strings.TrimSuffix(c.prefix, "_")}
	if !c.enabled {
		return stats, nil
	}
	all, err := c.store.Keys(namespaceRoot)
	if err != nil {
		return stats, fmt.Errorf("listing cache keys: %w", err)
	}
	for _, k := range all {
		if !strings.HasPrefix(k, c.prefix) {
			stats.Stale++
			continue
		}
		stats.Entries++
		if data, ok := c.store.Get(k); ok {
			stats.TotalBytes += int64(len(data))
		}
	}
	return stats, nil
}

// Clear removes every entry for every schema version, including stale
// namespaces orphaned by version bumps.
func (c *Cache) Clear() error {
	if !c.enabled {
		return nil
	}
	keys, err := c.store.Keys(namespaceRoot)
	if err != nil {
		return fmt.Errorf("listing cache keys: %w", err)
	}
	for _, k := range keys {
		if err := c.store.Delete(k); err != nil {
			return fmt.Errorf("deleting cache entry: %w", err)
		}
	}
	return nil
}
