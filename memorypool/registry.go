package memorypool

// LiveCounter is implemented by every Arena[T]; it lets a Registry report
// per-type live-object counts (spec.md I7) without needing to know each
// arena's concrete element type.
type LiveCounter interface {
	Live() int
}

// Registry is the Context-held collection of per-Kind arenas. Concrete
// engine packages register their typed Arena[T] here under the Kind they
// back so that terminateContext can walk all of them uniformly.
type Registry struct {
	counters [kindCount]LiveCounter
}

// Register associates an arena with kind. Intended to be called once per
// Kind during context construction.
func (r *Registry) Register(kind Kind, counter LiveCounter) {
	r.counters[kind] = counter
}

// LiveCounts returns a snapshot of every registered Kind's live-object
// count, keyed by Kind, for terminateContext's leak report.
func (r *Registry) LiveCounts() map[Kind]int {
	out := make(map[Kind]int, kindCount)
	for k, c := range r.counters {
		if c == nil {
			continue
		}
		out[Kind(k)] = c.Live()
	}
	return out
}

// AnyLeaked reports whether any registered arena still has live objects.
func (r *Registry) AnyLeaked() bool {
	for _, c := range r.counters {
		if c != nil && c.Live() > 0 {
			return true
		}
	}
	return false
}
