// Package cache provides durable, namespaced, quota-respecting storage of
// normalized analysis results keyed by image fingerprint.
//
// Entries live under the namespace prefix "analysis_v<SchemaVersion>_".
// The version must be bumped whenever the AnalysisResult schema changes in
// any way; old-version entries are never read or migrated, only reclaimed by
// Clear or by quota eviction.
//
// Storage is a capability interface ([Store]) with memory, file, and SQLite
// backends, each enforcing a configurable byte budget. When a write hits the
// budget the cache deletes every key in its namespace and retries the write
// exactly once; results are cheap to regenerate from the remote service, so
// a full sweep beats LRU bookkeeping. Caching is strictly best-effort: no
// cache failure is ever surfaced to a caller.
package cache
