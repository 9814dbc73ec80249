// Package fingerprint derives stable cache keys from image payloads.
//
// [Image] computes a SHA-256 digest over the full payload, making the result
// cache content-addressed: identical image bytes always map to the same key.
// The digest covers every byte of the input; hashing a prefix would let
// visually distinct images that share leading bytes collide and serve each
// other's nutrition data.
//
// [Fallback] is a non-cryptographic rolling hash for environments where a
// crypto digest cannot be computed. Its output carries the "simple_" prefix
// so the two hash spaces can never produce the same key.
package fingerprint
