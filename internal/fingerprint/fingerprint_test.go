package fingerprint

import (
	"math/rand"
	"strings"
	"testing"
)

func TestImage_Deterministic(t *testing.T) {
	data := []byte("jpeg payload bytes")
	if Image(data) != Image(data) {
		t.Error("Same input should produce same fingerprint")
	}
	if len(Image(data)) != 64 { // SHA-256 hex = 64 chars
		t.Errorf("Fingerprint length = %d, want 64", len(Image(data)))
	}
	if Image(data) != Image([]byte("jpeg payload bytes")) {
		t.Error("Byte-identical copies should produce same fingerprint")
	}
}

func TestImage_MutationAnywhereChangesFingerprint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := make([]byte, 4096)
	rng.Read(base)
	want := Image(base)

	// Flip one byte at random offsets, biased toward the tail to catch
	// prefix-only hashing bugs.
	offsets := []int{0, 1, len(base) / 2, len(base) - 2, len(base) - 1}
	for i := 0; i < 50; i++ {
		offsets = append(offsets, rng.Intn(len(base)))
	}
	for _, off := range offsets {
		mutated := make([]byte, len(base))
		copy(mutated, base)
		mutated[off] ^= 0xff
		if Image(mutated) == want {
			t.Errorf("Mutation at offset %d did not change fingerprint", off)
		}
	}
}

func TestImage_LastByteOnly(t *testing.T) {
	a := []byte(strings.Repeat("x", 1<<16) + "a")
	b := []byte(strings.Repeat("x", 1<<16) + "b")
	if Image(a) == Image(b) {
		t.Error("Inputs differing only in last byte must not collide")
	}
}

func TestFallback_DisjointHashSpace(t *testing.T) {
	data := []byte("payload")
	fb := Fallback(data)
	if !strings.HasPrefix(fb, FallbackPrefix) {
		t.Errorf("Fallback = %q, want %q prefix", fb, FallbackPrefix)
	}
	if fb == Image(data) {
		t.Error("Fallback and Image must never produce the same key")
	}
	if Fallback(data) != fb {
		t.Error("Fallback should be deterministic")
	}
	if Fallback([]byte("payloae")) == fb {
		t.Error("Fallback should differ for different input")
	}
}
