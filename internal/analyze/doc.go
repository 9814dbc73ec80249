// Package analyze coordinates one meal-photo analysis: fingerprint the
// image, consult the result cache, call the inference provider on a miss,
// normalize the untrusted response, and store it.
//
// An [Engine] takes its collaborators (provider, cache, logger) at
// construction time; there is no ambient state, so a missing API key is an
// explicit constructor-time failure rather than a hidden module-level one.
// Every call is independent and idempotent with respect to the cache:
// analyzing the same image twice yields the same result, the second time
// without a remote call. Concurrent misses for the same image are not
// coalesced; both calls hit the service and the second cache write wins,
// which is harmless because the service is called at near-zero temperature.
//
// Failures carry one of four kinds the UI can branch on; see [Kind]. The
// engine never retries: rate limits are surfaced so retry stays a
// user-initiated action.
package analyze
