package fastmap

import (
	"iter"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/dshills/fastcoll/compare"
	"github.com/dshills/fastcoll/mem"
)

const (
	innerBits = 6
	innerLen  = 1 << innerBits // bucket cells per block
	innerMask = innerLen - 1

	initialOuter = 1
	growthFactor = 8
	maxOuter     = 1 << 18 // growth stops here; lookups still work, chains lengthen

	entryBlock = 4 // entries allocated per block
)

// bucketTable is one generation of the bucket array. Lookups probe the
// newest generation and fall through the old chain; entries are never
// rehashed between generations.
type bucketTable[K, V any] struct {
	blocks [][]atomic.Pointer[Entry[K, V]]
	mask   uint32
	old    *bucketTable[K, V]
}

func (t *bucketTable[K, V]) cell(hash uint32) *atomic.Pointer[Entry[K, V]] {
	i := hash & t.mask
	return &t.blocks[i>>innerBits][i&innerMask]
}

// Map is a hash map iterated in insertion order. The zero value is not
// usable; construct with New.
type Map[K, V any] struct {
	strategy      compare.Strategy[K]
	valueStrategy compare.Strategy[V]
	shared        bool
	region        *mem.Region

	// Read-mostly state, padded away from the mutex so lock traffic does
	// not bounce the cache line readers hit.
	table atomic.Pointer[bucketTable[K, V]]
	head  *Entry[K, V]
	tail  *Entry[K, V]
	size  atomic.Int32

	_  cpu.CacheLinePad
	mu sync.Mutex
}

// Option configures a Map at construction.
type Option[K, V any] func(*Map[K, V])

// Shared switches the map to concurrent-read, serialized-write mode. Gets
// and forward iteration are lock-free; puts of new keys and removals take
// the map's mutex. Shared maps never recycle removed entries.
func Shared[K, V any]() Option[K, V] {
	return func(m *Map[K, V]) { m.shared = true }
}

// WithValueStrategy sets the strategy used by ContainsValue.
func WithValueStrategy[K, V any](s compare.Strategy[V]) Option[K, V] {
	return func(m *Map[K, V]) { m.valueStrategy = s }
}

// WithRegion attributes the map's bucket and entry allocations to the given
// region.
func WithRegion[K, V any](r *mem.Region) Option[K, V] {
	return func(m *Map[K, V]) { m.region = r }
}

// WithCapacity pre-sizes the bucket array for the expected number of
// entries, avoiding transitional fallback generations during initial fill.
func WithCapacity[K, V any](capacity int) Option[K, V] {
	return func(m *Map[K, V]) {
		outer := initialOuter
		for outer < maxOuter && capacity>>innerBits >= outer {
			outer *= growthFactor
		}
		m.table.Store(m.newTable(outer, nil))
	}
}

// New creates a map keyed by the given strategy.
func New[K, V any](strategy compare.Strategy[K], opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		strategy: strategy,
		region:   mem.NewRegion("fastmap"),
	}
	m.head = &Entry[K, V]{sentinel: true}
	m.tail = &Entry[K, V]{sentinel: true}
	m.head.after.Store(m.tail)
	m.tail.before = m.head
	m.table.Store(m.newTable(initialOuter, nil))
	for _, opt := range opts {
		opt(m)
	}
	if m.shared {
		m.head.shared = true
		m.tail.shared = true
	}
	return m
}

func (m *Map[K, V]) newTable(outer int, old *bucketTable[K, V]) *bucketTable[K, V] {
	t := &bucketTable[K, V]{
		mask: uint32(outer<<innerBits - 1),
		old:  old,
	}
	m.region.Run(func() {
		t.blocks = make([][]atomic.Pointer[Entry[K, V]], outer)
		for i := range t.blocks {
			t.blocks[i] = make([]atomic.Pointer[Entry[K, V]], innerLen)
		}
	})
	return t
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int { return int(m.size.Load()) }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size.Load() == 0 }

// IsShared reports whether the map is in shared mode.
func (m *Map[K, V]) IsShared() bool { return m.shared }

// find walks the bucket generations newest-first. Safe without the mutex in
// shared mode: cells and next pointers are published atomically.
func (m *Map[K, V]) find(key K, hash uint32) *Entry[K, V] {
	for t := m.table.Load(); t != nil; t = t.old {
		for e := t.cell(hash).Load(); e != nil; e = e.next.Load() {
			if e.hash == hash && m.strategy.Equal(key, e.key) {
				return e
			}
		}
	}
	return nil
}

// Get returns the value mapped to key and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.find(key, m.strategy.Hash(key)); e != nil {
		return e.Value(), true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.find(key, m.strategy.Hash(key)) != nil
}

// Lookup returns the entry for key, or nil. The entry's value tracks later
// replacements until the entry is removed.
func (m *Map[K, V]) Lookup(key K) *Entry[K, V] {
	return m.find(key, m.strategy.Hash(key))
}

// Put maps key to value and returns the previous value, if any. Replacing
// the value of an existing key is not a structural change: it keeps the
// entry's iteration position and, in shared mode, needs no lock.
func (m *Map[K, V]) Put(key K, value V) (previous V, replaced bool) {
	hash := m.strategy.Hash(key)
	if e := m.find(key, hash); e != nil {
		previous = e.Value()
		e.storeValue(value)
		return previous, true
	}
	if !m.shared {
		m.addEntry(key, hash, value)
		return previous, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e := m.find(key, hash); e != nil { // lost the race to another writer
		previous = e.Value()
		e.storeValue(value)
		return previous, true
	}
	m.addEntry(key, hash, value)
	return previous, false
}

// PutAll inserts every pair produced by seq, in sequence order.
func (m *Map[K, V]) PutAll(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Put(k, v)
	}
}

// Remove deletes key and returns the value it mapped to, if any.
func (m *Map[K, V]) Remove(key K) (previous V, removed bool) {
	hash := m.strategy.Hash(key)
	if !m.shared {
		e := m.find(key, hash)
		if e == nil {
			return previous, false
		}
		previous = e.Value()
		m.detach(e)
		m.recycle(e)
		m.size.Add(-1)
		return previous, true
	}
	if m.find(key, hash) == nil { // avoid the lock when the key is absent
		return previous, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.find(key, hash)
	if e == nil {
		return previous, false
	}
	previous = e.Value()
	m.detach(e)
	m.size.Add(-1)
	return previous, true
}

// addEntry links a new entry for key into the newest bucket generation and
// at the end of the order chain. Shared-mode callers hold the mutex.
func (m *Map[K, V]) addEntry(key K, hash uint32, value V) {
	t := m.table.Load()
	if int(m.size.Load())>>innerBits >= len(t.blocks) {
		t = m.grow(t)
	}

	e := m.takeFree()
	e.key = key
	e.hash = hash
	e.storeValue(value)

	// Bucket chain, head insertion. The cell store publishes the entry to
	// shared-mode lookups.
	cell := t.cell(hash)
	first := cell.Load()
	e.next.Store(first)
	e.prev = nil
	e.slot = cell
	if first != nil {
		first.prev = e
	}
	cell.Store(e)

	// Order chain, before tail. The after store publishes the entry to
	// shared-mode iteration.
	last := m.tail.before
	e.before = last
	e.after.Store(m.tail)
	last.after.Store(e)
	m.tail.before = e

	m.size.Add(1)
}

// grow installs a bucket array growthFactor times larger, chaining the
// current one behind it as the lookup fallback.
func (m *Map[K, V]) grow(t *bucketTable[K, V]) *bucketTable[K, V] {
	outer := len(t.blocks) * growthFactor
	if outer > maxOuter {
		return t
	}
	nt := m.newTable(outer, t)
	m.table.Store(nt)
	return nt
}

// takeFree pops a pre-allocated entry parked behind the tail sentinel,
// allocating a fresh block of four when the pool is empty.
func (m *Map[K, V]) takeFree() *Entry[K, V] {
	e := m.tail.after.Load()
	if e == nil {
		m.region.Run(func() {
			blk := make([]Entry[K, V], entryBlock)
			for i := range blk {
				blk[i].shared = m.shared
				if i+1 < entryBlock {
					blk[i].after.Store(&blk[i+1])
				}
			}
			m.tail.after.Store(&blk[0])
		})
		e = m.tail.after.Load()
	}
	m.tail.after.Store(e.after.Load())
	return e
}

// detach unlinks e from its bucket chain and from the order chain. A shared
// reader standing on e can still follow its after pointer onward.
func (m *Map[K, V]) detach(e *Entry[K, V]) {
	n := e.next.Load()
	if e.prev == nil {
		e.slot.Store(n)
	} else {
		e.prev.next.Store(n)
	}
	if n != nil {
		n.prev = e.prev
	}
	e.slot = nil
	e.prev = nil

	next := e.after.Load()
	e.before.after.Store(next)
	next.before = e.before
}

// recycle zeroes e and parks it behind the tail sentinel for reuse. Only
// unshared maps recycle; a shared map may have readers still holding e.
func (m *Map[K, V]) recycle(e *Entry[K, V]) {
	var zk K
	var zv V
	e.key = zk
	e.value = zv
	e.hash = 0
	e.before = nil
	e.after.Store(m.tail.after.Load())
	m.tail.after.Store(e)
}

// Clear removes every entry. The bucket array shrinks back to its initial
// generation and any fallback chain is discarded. Unshared maps recycle all
// entries; shared maps drop them.
func (m *Map[K, V]) Clear() {
	if m.shared {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	if !m.shared {
		// Park the whole live chain behind tail as the new free pool.
		first := m.head.after.Load()
		if first != m.tail {
			last := m.tail.before
			for e := first; e != m.tail; e = e.after.Load() {
				var zk K
				var zv V
				e.key = zk
				e.value = zv
				e.hash = 0
				e.prev = nil
				e.slot = nil
				e.before = nil
			}
			last.after.Store(m.tail.after.Load())
			m.tail.after.Store(first)
		}
	}
	m.table.Store(m.newTable(initialOuter, nil))
	m.head.after.Store(m.tail)
	m.tail.before = m.head
	m.size.Store(0)
}

// Front returns the first entry in insertion order, or nil when empty.
func (m *Map[K, V]) Front() *Entry[K, V] { return m.head.Next() }

// Back returns the last entry in insertion order, or nil when empty. Like
// Entry.Prev, Back requires external serialization in shared maps.
func (m *Map[K, V]) Back() *Entry[K, V] {
	e := m.tail.before
	if e.sentinel {
		return nil
	}
	return e
}

// All returns an iterator over (key, value) pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := m.Front(); e != nil; e = e.Next() {
			if !yield(e.key, e.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := m.Front(); e != nil; e = e.Next() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values returns an iterator over values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := m.Front(); e != nil; e = e.Next() {
			if !yield(e.Value()) {
				return
			}
		}
	}
}

// ContainsValue reports whether any entry holds a value equal to value under
// the map's value strategy. It panics when no value strategy is configured.
func (m *Map[K, V]) ContainsValue(value V) bool {
	if m.valueStrategy == nil {
		panic("fastmap: no value strategy configured (use WithValueStrategy)")
	}
	for e := m.Front(); e != nil; e = e.Next() {
		if m.valueStrategy.Equal(value, e.Value()) {
			return true
		}
	}
	return false
}

// EqualFunc reports whether m and other hold the same keys mapped to values
// equal under eq. Insertion order is not compared.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.Size() != other.Size() {
		return false
	}
	for e := m.Front(); e != nil; e = e.Next() {
		ov, ok := other.Get(e.key)
		if !ok || !eq(e.Value(), ov) {
			return false
		}
	}
	return true
}

// KeyStrategy returns the strategy the map hashes and compares keys with.
func (m *Map[K, V]) KeyStrategy() compare.Strategy[K] { return m.strategy }
