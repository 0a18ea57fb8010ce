package gal

import (
	"testing"

	"github.com/binmian/levikno/memorypool"
)

type tableTestPayload struct{ value int }

func TestTableCreateGetDestroy(t *testing.T) {
	table := NewTable[BufferMarker, tableTestPayload](memorypool.Pooled, 4, 4)

	h, ptr, err := table.Create(false, func(p *tableTestPayload) { p.value = 42 })
	if err != nil {
		t.Fatal(err)
	}
	if ptr.value != 42 {
		t.Fatalf("expected init to run, got %d", ptr.value)
	}

	got, ok := table.Get(h)
	if !ok || got.value != 42 {
		t.Fatalf("expected live handle to resolve, ok=%v got=%+v", ok, got)
	}

	table.Destroy(h)
	if _, ok := table.Get(h); ok {
		t.Fatalf("expected destroyed handle to no longer resolve")
	}
	if table.Live() != 0 {
		t.Fatalf("expected 0 live after destroy, got %d", table.Live())
	}
}

func TestTableStaleHandleAfterSlotReuse(t *testing.T) {
	table := NewTable[BufferMarker, tableTestPayload](memorypool.Pooled, 1, 1)

	h1, _, err := table.Create(false, nil)
	if err != nil {
		t.Fatal(err)
	}
	table.Destroy(h1)

	h2, _, err := table.Create(false, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := table.Get(h1); ok {
		t.Fatalf("stale handle h1 should not resolve after its slot was reused")
	}
	if _, ok := table.Get(h2); !ok {
		t.Fatalf("fresh handle h2 should resolve")
	}
}
