package gal

import (
	"sync"

	"github.com/binmian/levikno/memorypool"
)

// Table is the shared "opaque handle with side-table state" implementation
// (Design Notes) every backend's per-type object store builds on: a
// memorypool.Arena[T] for storage plus a generation tag per slot so a stale
// Handle copy is detected rather than silently reused (spec.md I1).
type Table[M Marker, T any] struct {
	mu          sync.Mutex
	arena       *memorypool.Arena[T]
	entries     map[uint32]*tableEntry[T]
	individualN uint32
}

type tableEntry[T any] struct {
	ptr        *T
	slot       memorypool.Slot
	generation uint32
}

// NewTable builds a Table backed by a pool of the given mode/sizing.
func NewTable[M Marker, T any](mode memorypool.Mode, initialCount, overflowCount int) *Table[M, T] {
	return &Table[M, T]{
		arena:   memorypool.NewArena[T](mode, initialCount, overflowCount),
		entries: make(map[uint32]*tableEntry[T]),
	}
}

func (t *Table[M, T]) key(slot memorypool.Slot, individual bool) uint32 {
	if individual {
		t.individualN++
		return t.individualN
	}
	//nolint:gosec // bounded by realistic per-block capacities
	return uint32(slot.Block())<<16 | uint32(slot.Offset())
}

// Create takes a fresh element, runs init over it, and returns its handle.
func (t *Table[M, T]) Create(individual bool, init func(*T)) (Handle[M], *T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ptr, slot, err := t.arena.Take()
	if err != nil {
		return Handle[M]{}, nil, Err(MemAllocFailure, "%v", err)
	}
	k := t.key(slot, individual)
	e, existed := t.entries[k]
	gen := uint32(1)
	if existed {
		gen = e.generation + 1
	}
	t.entries[k] = &tableEntry[T]{ptr: ptr, slot: slot, generation: gen}
	if init != nil {
		init(ptr)
	}
	return NewHandle[M](k, gen), ptr, nil
}

// Get resolves a handle to its backing object, returning ok=false if the
// handle is stale (destroyed, or from a different Table entirely).
func (t *Table[M, T]) Get(h Handle[M]) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[h.Index()]
	if !ok || e.ptr == nil || e.generation != h.Generation() {
		return nil, false
	}
	return e.ptr, true
}

// Destroy releases h's slot for reuse. A stale or already-destroyed handle
// is a silent no-op — callers that need strict double-destroy detection
// should check Get first.
func (t *Table[M, T]) Destroy(h Handle[M]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[h.Index()]
	if !ok || e.ptr == nil || e.generation != h.Generation() {
		return
	}
	if e.slot.Block() < 0 {
		// Individual-mode keys are never reissued, so nothing to remember.
		delete(t.entries, h.Index())
	} else {
		// Keep the generation so the slot's next Create issues a newer one.
		t.entries[h.Index()] = &tableEntry[T]{generation: e.generation}
	}
	t.arena.PushBack(e.slot)
}

// Live returns the number of outstanding (created, not destroyed) objects.
func (t *Table[M, T]) Live() int { return t.arena.Live() }
