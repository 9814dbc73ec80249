package cache

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/sdutta9/mealscan/internal/nutrition"
)

func sampleResult() *nutrition.AnalysisResult {
	return &nutrition.AnalysisResult{
		Items: []nutrition.FoodItem{{
			Name: nutrition.LocalizedText{
				nutrition.LangEnglish:  "Rice",
				nutrition.LangBengali:  "ভাত",
				nutrition.LangHindi:    "चावल",
				nutrition.LangAssamese: "ভাত",
			},
			Portion: nutrition.LocalizedText{
				nutrition.LangEnglish:  "1 bowl",
				nutrition.LangBengali:  "১ বাটি",
				nutrition.LangHindi:    "1 कटोरी",
				nutrition.LangAssamese: "১ বাটি",
			},
			Calories: 200, Protein: 4, Carbs: 44, Fats: 0.5,
			Notes: nutrition.LocalizedText{
				nutrition.LangEnglish:  "Plain steamed",
				nutrition.LangBengali:  "সেদ্ধ",
				nutrition.LangHindi:    "उबला हुआ",
				nutrition.LangAssamese: "সিজোৱা",
			},
			Status: nutrition.StatusPass,
		}},
		TotalCalories: 200, TotalProtein: 4, TotalCarbs: 44, TotalFats: 0.5,
		HealthRating: 7,
		Advice: nutrition.LocalizedText{
			nutrition.LangEnglish:  "Add a protein source.",
			nutrition.LangBengali:  "প্রোটিন যোগ করুন।",
			nutrition.LangHindi:    "प्रोटीन जोड़ें।",
			nutrition.LangAssamese: "প্ৰ'টিন যোগ কৰক।",
		},
	}
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := New(NewMemoryStore(0))
	fp := "abc123"

	if _, ok := c.Get(fp); ok {
		t.Error("Expected miss before put")
	}

	want := sampleResult()
	c.Put(fp, want)

	got, ok := c.Get(fp)
	if !ok {
		t.Fatal("Expected hit after put")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round-trip mismatch:\ngot  = %+v\nwant = %+v", got, want)
	}
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	store := NewMemoryStore(0)
	c := New(store)
	fp := "deadbeef"

	store.Set(Namespace(SchemaVersion)+fp, []byte("{not json"))

	if _, ok := c.Get(fp); ok {
		t.Error("Corrupt entry should read as a miss")
	}
	// The corrupt entry is discarded, not left to fail again.
	if _, present := store.Get(Namespace(SchemaVersion) + fp); present {
		t.Error("Corrupt entry should be deleted on read")
	}
}

// entrySize measures the serialized size of one cached entry so quota tests
// do not depend on the exact JSON encoding.
func entrySize(t *testing.T, r *nutrition.AnalysisResult) int64 {
	t.Helper()
	data, err := json.Marshal(Entry{Timestamp: time.Now().Unix(), Data: *r})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	return int64(len(data))
}

func TestCache_QuotaEvictionAndRetry(t *testing.T) {
	r := sampleResult()
	// Budget fits two entries but not three; the third write must evict the
	// namespace and then succeed on retry.
	c := New(NewMemoryStore(entrySize(t, r)*2 + entrySize(t, r)/2))

	c.Put("fp1", r)
	c.Put("fp2", r)
	if _, ok := c.Get("fp1"); !ok {
		t.Fatal("fp1 should be cached before eviction")
	}

	c.Put("fp3", r)

	if _, ok := c.Get("fp1"); ok {
		t.Error("fp1 should be gone after full-namespace eviction")
	}
	if _, ok := c.Get("fp2"); ok {
		t.Error("fp2 should be gone after full-namespace eviction")
	}
	if _, ok := c.Get("fp3"); !ok {
		t.Error("Retried write after eviction should succeed")
	}
}

func TestCache_AbandonsWriteWhenRetryFails(t *testing.T) {
	// Budget too small for even a single entry: eviction cannot help, and
	// Put must swallow the failure.
	r := sampleResult()
	c := New(NewMemoryStore(entrySize(t, r) / 2))
	c.Put("fp1", r)
	if _, ok := c.Get("fp1"); ok {
		t.Error("Entry larger than quota should not be cached")
	}
}

func TestCache_SchemaVersionBumpInvalidates(t *testing.T) {
	store := NewMemoryStore(0)
	old := NewVersioned(store, 2)
	old.Put("fp1", sampleResult())

	cur := NewVersioned(store, 3)
	if _, ok := cur.Get("fp1"); ok {
		t.Error("Entry written under an old schema version must be invisible")
	}

	stats, err := cur.GetStats()
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if stats.Stale != 1 {
		t.Errorf("Stale = %d, want 1", stats.Stale)
	}
}

func TestCache_ClearSweepsAllVersions(t *testing.T) {
	store := NewMemoryStore(0)
	NewVersioned(store, 2).Put("fp1", sampleResult())
	cur := NewVersioned(store, 3)
	cur.Put("fp2", sampleResult())

	if err := cur.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	keys, err := store.Keys("")
	if err != nil {
		t.Fatalf("Keys error: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Keys after Clear = %v, want none", keys)
	}
}

func TestCache_Disabled(t *testing.T) {
	c := Disabled()
	if c.Enabled() {
		t.Error("Cache should be disabled")
	}
	c.Put("fp", sampleResult())
	if _, ok := c.Get("fp"); ok {
		t.Error("Get on disabled cache should always miss")
	}
	if err := c.Clear(); err != nil {
		t.Errorf("Clear on disabled cache should not error: %v", err)
	}
}

func TestCache_GetStats(t *testing.T) {
	c := New(NewMemoryStore(0))
	stats, err := c.GetStats()
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("Entries = %d, want 0", stats.Entries)
	}

	c.Put("fp1", sampleResult())
	c.Put("fp2", sampleResult())

	stats, err = c.GetStats()
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if stats.Entries != 2 {
		t.Errorf("Entries = %d, want 2", stats.Entries)
	}
	if stats.TotalBytes <= 0 {
		t.Error("TotalBytes should be > 0")
	}
}
