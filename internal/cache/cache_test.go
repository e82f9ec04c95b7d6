package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type payload struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

func TestSetGetRoundTrip(t *testing.T) {
	mgr := NewManager(t.TempDir(), time.Hour, true)
	params := map[string]string{"symbol": "MSFT"}
	stored := payload{Symbol: "MSFT", Price: 410.5}

	if err := mgr.Set("yahoo", "quote", params, stored); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var loaded payload
	if !mgr.Get("yahoo", "quote", params, &loaded) {
		t.Fatalf("expected cache hit")
	}
	if loaded != stored {
		t.Fatalf("round trip: expected %+v, got %+v", stored, loaded)
	}
}

func TestGetMissOnDifferentParams(t *testing.T) {
	mgr := NewManager(t.TempDir(), time.Hour, true)
	if err := mgr.Set("yahoo", "quote", map[string]string{"symbol": "MSFT"}, payload{}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var loaded payload
	if mgr.Get("yahoo", "quote", map[string]string{"symbol": "AAPL"}, &loaded) {
		t.Fatalf("different params should miss")
	}
	if mgr.Get("yahoo", "history", map[string]string{"symbol": "MSFT"}, &loaded) {
		t.Fatalf("different method should miss")
	}
}

func TestExpiredEntryRemoved(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(dir, time.Hour, true)
	params := map[string]string{"symbol": "MSFT"}
	if err := mgr.Set("yahoo", "quote", params, payload{Symbol: "MSFT"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one cache file, got %d (err %v)", len(entries), err)
	}
	path := filepath.Join(dir, entries[0].Name())

	// Age the file beyond the TTL.
	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	var loaded payload
	if mgr.Get("yahoo", "quote", params, &loaded) {
		t.Fatalf("expired entry should miss")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expired entry should be removed, stat err %v", err)
	}
}

func TestDisabledManagerIsNoOp(t *testing.T) {
	dir := t.TempDir()
	mgr := NewManager(dir, time.Hour, false)
	params := map[string]string{"symbol": "MSFT"}

	if err := mgr.Set("yahoo", "quote", params, payload{Symbol: "MSFT"}); err != nil {
		t.Fatalf("Set on disabled manager: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("disabled manager should write nothing, found %d files", len(entries))
	}

	var loaded payload
	if mgr.Get("yahoo", "quote", params, &loaded) {
		t.Fatalf("disabled manager should always miss")
	}
}
