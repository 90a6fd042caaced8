package session

import (
	"testing"

	"github.com/doeshing/uniterm/internal/domain"
)

func TestStoreAppendAndRecall(t *testing.T) {
	store := NewStore(10)
	store.Append("pwd")
	store.Append("ls -la")
	store.Append("cd /tmp")

	if store.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", store.Len())
	}

	line, ok := store.At(2)
	if !ok || line != "ls -la" {
		t.Fatalf("At(2) = %q, %v", line, ok)
	}

	line, ok = store.Last()
	if !ok || line != "cd /tmp" {
		t.Fatalf("Last() = %q, %v", line, ok)
	}

	if _, ok := store.At(0); ok {
		t.Fatal("At(0) should not resolve")
	}
	if _, ok := store.At(4); ok {
		t.Fatal("At(4) should not resolve")
	}
}

func TestStoreEvictsOldest(t *testing.T) {
	store := NewStore(3)
	store.Append("one")
	store.Append("two")
	store.Append("three")
	store.Append("four")

	if store.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", store.Len())
	}

	line, ok := store.At(1)
	if !ok || line != "two" {
		t.Fatalf("At(1) after eviction = %q, %v, want %q", line, ok, "two")
	}
	if _, ok := store.At(4); ok {
		t.Fatal("evicted window should only hold 3 entries")
	}
}

func TestStoreIgnoresBlankLines(t *testing.T) {
	store := NewStore(5)
	store.Append("")
	store.Append("   ")
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}
}

func TestStoreEntriesLimit(t *testing.T) {
	store := NewStore(5)
	store.Append("one")
	store.Append("two")
	store.Append("three")

	got := store.Entries(2)
	want := []domain.HistoryEntry{
		{Index: 2, Line: "two"},
		{Index: 3, Line: "three"},
	}
	if len(got) != len(want) {
		t.Fatalf("Entries(2) returned %d entries", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Entries(2)[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if all := store.Entries(0); len(all) != 3 {
		t.Fatalf("Entries(0) returned %d entries, want 3", len(all))
	}
}
