package fastmap

import "sync/atomic"

// Entry is a key-value node. Entries sit on two chains at once: a singly
// linked collision chain within their bucket, and the doubly linked
// insertion-order chain between the map's sentinels.
//
// Entries are allocated in blocks of four and, in unshared maps, recycled
// through a free list parked behind the tail sentinel.
type Entry[K, V any] struct {
	key  K
	hash uint32

	value  V                 // unshared maps write here
	boxed  atomic.Pointer[V] // shared maps write here, so replacement is atomic
	shared bool

	// Bucket collision chain. next is atomic so shared-mode lookups can
	// walk the chain without the mutex; prev is only touched by writers.
	next atomic.Pointer[Entry[K, V]]
	prev *Entry[K, V]
	slot *atomic.Pointer[Entry[K, V]] // bucket head cell, nil when unlinked

	// Insertion-order chain. after is the publication point for shared
	// readers; before is writer-only.
	after    atomic.Pointer[Entry[K, V]]
	before   *Entry[K, V]
	sentinel bool
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's current value.
func (e *Entry[K, V]) Value() V {
	if e.shared {
		if p := e.boxed.Load(); p != nil {
			return *p
		}
		var zero V
		return zero
	}
	return e.value
}

func (e *Entry[K, V]) storeValue(v V) {
	if e.shared {
		e.boxed.Store(&v)
		return
	}
	e.value = v
}

// Next returns the entry inserted after this one, or nil at the end of the
// map. In a shared map Next is safe without locking, even across a
// concurrent removal of this entry.
func (e *Entry[K, V]) Next() *Entry[K, V] {
	n := e.after.Load()
	if n == nil || n.sentinel {
		return nil
	}
	return n
}

// Prev returns the entry inserted before this one, or nil at the start of
// the map. Unlike Next, Prev requires external serialization in shared maps.
func (e *Entry[K, V]) Prev() *Entry[K, V] {
	p := e.before
	if p == nil || p.sentinel {
		return nil
	}
	return p
}
