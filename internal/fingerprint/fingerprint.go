package fingerprint

import (
	"crypto/sha256"
	"fmt"
)

// FallbackPrefix marks digests produced by the degraded non-cryptographic
// hash so they can never collide with a SHA-256 key.
const FallbackPrefix = "simple_"

// Image returns the lowercase hex SHA-256 digest of the full payload.
func Image(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h)
}

// Fallback returns a DJB2-style rolling hash of the payload, prefixed with
// [FallbackPrefix]. It is weaker than Image but still deterministic over
// every input byte, and is only used when a cryptographic digest is
// unavailable.
func Fallback(data []byte) string {
	var h uint64 = 5381
	for _, b := range data {
		h = h*33 + uint64(b)
	}
	return fmt.Sprintf("%s%016x", FallbackPrefix, h)
}
