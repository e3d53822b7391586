package store

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jormungand/CoconutKit/data"
	"github.com/jormungand/CoconutKit/tree"
)

func TestDataStoreRoundTrip(t *testing.T) {
	store := NewDataStore(0, nil)

	payload := []byte("hello world")
	store.Put("h1", payload, tree.Locator{})

	got, ok := store.Get("h1")
	if !ok {
		t.Fatal("Get failed for resident handle")
	}

	if !bytes.Equal(got, payload) {
		t.Errorf("Expected %q, got %q", payload, got)
	}

	t.Run("CopiesIn", func(tst *testing.T) {
		payload[0] = 'X'

		got, _ := store.Get("h1")
		if got[0] != 'h' {
			tst.Error("Expected stored payload to be unaffected by caller mutation")
		}
	})

	t.Run("CopiesOut", func(tst *testing.T) {
		first, _ := store.Get("h1")
		first[0] = 'Y'

		second, _ := store.Get("h1")
		if second[0] != 'h' {
			tst.Error("Expected stored payload to be unaffected by reader mutation")
		}
	})

	t.Run("Missing", func(tst *testing.T) {
		if _, ok := store.Get("ghost"); ok {
			tst.Error("Expected Get to fail for unknown handle")
		}
	})
}

func TestDataStoreRemove(t *testing.T) {
	evicted := 0
	store := NewDataStore(0, func(handle string, cost int64, owner tree.Locator) {
		evicted++
	})

	store.Put("h1", []byte("abc"), tree.Locator{})

	if err := store.Remove("h1"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if store.Len() != 0 || store.TotalCost() != 0 {
		t.Errorf("Expected empty store, got %d entries costing %d", store.Len(), store.TotalCost())
	}

	if evicted != 0 {
		t.Error("Expected no eviction notification for explicit removal")
	}

	if err := store.Remove("h1"); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestDataStoreEviction(t *testing.T) {
	t.Run("OldestFirst", func(tst *testing.T) {
		var victims []string
		store := NewDataStore(10, func(handle string, cost int64, owner tree.Locator) {
			victims = append(victims, handle)
		})

		store.Put("old", []byte("aaaa"), tree.Locator{})
		store.Put("mid", []byte("bbbb"), tree.Locator{})
		store.Put("new", []byte("cccc"), tree.Locator{})

		if len(victims) != 1 || victims[0] != "old" {
			tst.Errorf("Expected [old] evicted, got %v", victims)
		}

		if store.TotalCost() != 8 {
			tst.Errorf("Expected resident cost 8, got %d", store.TotalCost())
		}
	})

	t.Run("GetRefreshesRecency", func(tst *testing.T) {
		var victims []string
		store := NewDataStore(10, func(handle string, cost int64, owner tree.Locator) {
			victims = append(victims, handle)
		})

		store.Put("old", []byte("aaaa"), tree.Locator{})
		store.Put("mid", []byte("bbbb"), tree.Locator{})

		if _, ok := store.Get("old"); !ok {
			tst.Fatal("Get failed for resident handle")
		}

		store.Put("new", []byte("cccc"), tree.Locator{})

		if len(victims) != 1 || victims[0] != "mid" {
			tst.Errorf("Expected [mid] evicted after refresh of 'old', got %v", victims)
		}
	})

	t.Run("OversizedEntryEvictsItself", func(tst *testing.T) {
		var victims []string
		store := NewDataStore(4, func(handle string, cost int64, owner tree.Locator) {
			victims = append(victims, handle)
		})

		store.Put("big", []byte("too large to stay"), tree.Locator{})

		if len(victims) != 1 || victims[0] != "big" {
			tst.Errorf("Expected the oversized entry itself evicted, got %v", victims)
		}

		if store.Len() != 0 || store.TotalCost() != 0 {
			tst.Errorf("Expected empty store, got %d entries costing %d", store.Len(), store.TotalCost())
		}
	})

	t.Run("ZeroLimitUnbounded", func(tst *testing.T) {
		store := NewDataStore(0, func(handle string, cost int64, owner tree.Locator) {
			tst.Errorf("Expected no eviction with unlimited budget, got '%s'", handle)
		})

		for _, handle := range []string{"a", "b", "c"} {
			store.Put(handle, bytes.Repeat([]byte("x"), 1024), tree.Locator{})
		}

		if store.Len() != 3 {
			tst.Errorf("Expected 3 resident entries, got %d", store.Len())
		}
	})

	t.Run("CarriesCostAndOwner", func(tst *testing.T) {
		parent := tree.NewDirectory()
		var gotCost int64
		var gotOwner tree.Locator

		store := NewDataStore(2, func(handle string, cost int64, owner tree.Locator) {
			gotCost = cost
			gotOwner = owner
		})

		store.Put("h1", []byte("abc"), tree.Locator{Parent: parent, Name: "f.txt"})

		if gotCost != 3 {
			tst.Errorf("Expected cost 3, got %d", gotCost)
		}

		if gotOwner.Parent != parent || gotOwner.Name != "f.txt" {
			tst.Errorf("Expected owner locator to round-trip, got %+v", gotOwner)
		}
	})
}

func TestDataStoreReplaceSameHandle(t *testing.T) {
	store := NewDataStore(0, nil)

	store.Put("h1", []byte("first"), tree.Locator{})
	store.Put("h1", []byte("second!"), tree.Locator{})

	if store.Len() != 1 {
		t.Errorf("Expected single entry, got %d", store.Len())
	}

	if store.TotalCost() != int64(len("second!")) {
		t.Errorf("Expected cost %d, got %d", len("second!"), store.TotalCost())
	}

	got, _ := store.Get("h1")
	if !bytes.Equal(got, []byte("second!")) {
		t.Errorf("Expected %q, got %q", "second!", got)
	}
}

func TestDataStoreSetTotalCostLimit(t *testing.T) {
	t.Run("LoweringEvictsImmediately", func(tst *testing.T) {
		var victims []string
		store := NewDataStore(0, func(handle string, cost int64, owner tree.Locator) {
			victims = append(victims, handle)
		})

		store.Put("a", []byte("1234"), tree.Locator{})
		store.Put("b", []byte("5678"), tree.Locator{})

		if err := store.SetTotalCostLimit(4); err != nil {
			tst.Fatalf("SetTotalCostLimit failed: %v", err)
		}

		if len(victims) != 1 || victims[0] != "a" {
			tst.Errorf("Expected [a] evicted, got %v", victims)
		}

		if store.TotalCost() != 4 || store.TotalCostLimit() != 4 {
			tst.Errorf("Expected cost 4 within limit 4, got %d/%d", store.TotalCost(), store.TotalCostLimit())
		}
	})

	t.Run("Negative", func(tst *testing.T) {
		store := NewDataStore(0, nil)
		if err := store.SetTotalCostLimit(-1); !errors.Is(err, data.ErrInvalid) {
			tst.Errorf("Expected ErrInvalid, got %v", err)
		}
	})

	t.Run("RaisingKeepsEntries", func(tst *testing.T) {
		store := NewDataStore(4, nil)
		store.Put("a", []byte("1234"), tree.Locator{})

		if err := store.SetTotalCostLimit(1024); err != nil {
			tst.Fatalf("SetTotalCostLimit failed: %v", err)
		}

		if store.Len() != 1 {
			tst.Errorf("Expected entry to survive a raised limit, got %d entries", store.Len())
		}
	})
}

func TestDataStoreClear(t *testing.T) {
	store := NewDataStore(0, func(handle string, cost int64, owner tree.Locator) {
		t.Errorf("Expected no notification from Clear, got '%s'", handle)
	})

	store.Put("a", []byte("abc"), tree.Locator{})
	store.Put("b", []byte("def"), tree.Locator{})

	store.Clear()

	if store.Len() != 0 || store.TotalCost() != 0 {
		t.Errorf("Expected empty store, got %d entries costing %d", store.Len(), store.TotalCost())
	}

	if store.Contains("a") || store.Contains("b") {
		t.Error("Expected cleared handles to be gone")
	}
}
