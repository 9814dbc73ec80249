package cache

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

// storeUnderTest exercises the Store contract shared by every backend.
func storeUnderTest(t *testing.T, s Store) {
	t.Helper()

	if _, ok := s.Get("missing"); ok {
		t.Error("Get on absent key should miss")
	}

	if err := s.Set("analysis_v3_aa", []byte("one")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := s.Set("analysis_v3_bb", []byte("two")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := s.Set("analysis_v2_cc", []byte("old")); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, ok := s.Get("analysis_v3_aa")
	if !ok || string(got) != "one" {
		t.Errorf("Get = %q, %v; want \"one\", true", got, ok)
	}

	// Whole-entry replacement.
	if err := s.Set("analysis_v3_aa", []byte("replaced")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, _ = s.Get("analysis_v3_aa")
	if string(got) != "replaced" {
		t.Errorf("Get after replace = %q", got)
	}

	keys, err := s.Keys("analysis_v3_")
	if err != nil {
		t.Fatalf("Keys error: %v", err)
	}
	want := []string{"analysis_v3_aa", "analysis_v3_bb"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys = %v, want %v", keys, want)
	}

	if err := s.Delete("analysis_v3_aa"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok := s.Get("analysis_v3_aa"); ok {
		t.Error("Get after delete should miss")
	}
	if err := s.Delete("analysis_v3_aa"); err != nil {
		t.Errorf("Deleting an absent key should be a no-op: %v", err)
	}
}

func TestMemoryStore_Contract(t *testing.T) {
	storeUnderTest(t, NewMemoryStore(0))
}

func TestFileStore_Contract(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	storeUnderTest(t, s)
}

func TestSQLiteStore_Contract(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"), 0)
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	defer s.Close()
	storeUnderTest(t, s)
}

func quotaUnderTest(t *testing.T, s Store) {
	t.Helper()
	if err := s.Set("k1", make([]byte, 40)); err != nil {
		t.Fatalf("Set within budget error: %v", err)
	}
	err := s.Set("k2", make([]byte, 40))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("Set over budget error = %v, want ErrQuotaExceeded", err)
	}
	// Replacing an existing key does not double-count its old value.
	if err := s.Set("k1", make([]byte, 60)); err != nil {
		t.Errorf("Replacement within budget error: %v", err)
	}
	if err := s.Delete("k1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := s.Set("k2", make([]byte, 40)); err != nil {
		t.Errorf("Set after delete should fit: %v", err)
	}
}

func TestMemoryStore_Quota(t *testing.T) {
	quotaUnderTest(t, NewMemoryStore(64))
}

func TestFileStore_Quota(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), 64)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	quotaUnderTest(t, s)
}

func TestSQLiteStore_Quota(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"), 64)
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	defer s.Close()
	quotaUnderTest(t, s)
}
