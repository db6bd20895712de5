package cacheinfra

import (
	"fmt"
	"slices"
	"testing"
)

func TestMapStore_Operations(t *testing.T) {
	store := NewMapStore()

	if _, ok := store.Get("team_events::900"); ok {
		t.Fatal("expected miss on empty store")
	}

	store.Set("team_events::900", []byte{0x90})
	store.Set("team_awards::900", []byte{0x90})

	if got, ok := store.Get("team_events::900"); !ok || len(got) != 1 {
		t.Errorf("expected stored payload, got %v (ok=%v)", got, ok)
	}

	keys := store.Keys()
	slices.Sort(keys)
	if !slices.Equal(keys, []string{"team_awards::900", "team_events::900"}) {
		t.Errorf("unexpected keys %v", keys)
	}

	store.Delete("team_events::900")
	store.Delete("team_events::missing")

	if _, ok := store.Get("team_events::900"); ok {
		t.Error("expected deleted key to miss")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", store.Len())
	}
}

func TestMapStore_NeverEvicts(t *testing.T) {
	store := NewMapStore()
	limit := DefaultConfig().Capacity * 3

	for i := 0; i < limit; i++ {
		store.Set(fmt.Sprintf("team_events::%d", i), []byte{0x90})
	}

	if store.Len() != limit {
		t.Fatalf("expected %d entries, got %d", limit, store.Len())
	}
	for i := 0; i < limit; i++ {
		if _, ok := store.Get(fmt.Sprintf("team_events::%d", i)); !ok {
			t.Fatalf("entry %d was dropped", i)
		}
	}
}
