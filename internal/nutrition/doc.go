// Package nutrition defines the meal-analysis data model and the
// normalization pass that repairs untrusted model output.
//
// An [AnalysisResult] is the unit of work and the unit of caching: the raw
// object parsed from a vision-language response is passed through
// [Normalize], which coerces numeric fields, fills every supported language
// of each [LocalizedText], and enforces the empty-plate invariant (a result
// with no items carries zeroed totals and the standardized refusal advice,
// regardless of what the model emitted). Downstream code may assume a
// normalized result is fully well-typed; no defensive coercion is needed
// outside this package.
//
// Normalize repairs structurally incomplete input. It only fails, with
// [ErrMalformed], when the payload is not parseable JSON at all, which
// signals a service-level problem rather than an empty result.
package nutrition
