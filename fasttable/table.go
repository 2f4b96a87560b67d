package fasttable

import (
	"fmt"
	"iter"

	"github.com/dshills/fastcoll/compare"
	"github.com/dshills/fastcoll/mem"
)

// Level geometry. Elements live in leaf blocks of 1<<d0; each higher level is
// two bits wider than the one below, so four levels cover the full positive
// int32 index space:
//
//	elems1[1<<d1][1<<d0]
//	elems2[1<<d2][1<<d1][1<<d0]
//	elems3[1<<d3][1<<d2][1<<d1][1<<d0]
//
// with get(i) = elemsN[(i>>r3)&m3][(i>>r2)&m2][(i>>r1)&m1][i&m0].
const (
	d0 = 5
	m0 = (1 << d0) - 1
	c0 = 1 << d0 // leaf block size

	d1 = d0 + 2
	r1 = d0
	m1 = (1 << d1) - 1
	c1 = 1 << (d0 + d1) // capacity of elems1

	d2 = d1 + 2
	r2 = d0 + d1
	m2 = (1 << d2) - 1
	c2 = 1 << (d0 + d1 + d2) // capacity of elems2

	d3 = d2 + 2
	r3 = d0 + d1 + d2
)

// BlockSize is the number of elements per leaf block. Capacity grows in
// BlockSize increments.
const BlockSize = c0

// Table is a random-access collection backed by a segmented multi-level
// array. Capacity grows by allocating additional leaf blocks; existing
// blocks are never moved or copied, so growth invalidates nothing.
//
// A Table is not synchronized. Concurrent mutation must be serialized
// externally.
type Table[E any] struct {
	elems1 [][]E
	elems2 [][][]E
	elems3 [][][][]E

	capacity int
	size     int

	strategy compare.Strategy[E]
	region   *mem.Region

	iterators *mem.Factory[*Iterator[E]] // lazily built by Iterate
}

// Option configures a Table at construction.
type Option[E any] func(*Table[E])

// WithStrategy sets the strategy used by Sort, IndexOf, and LastIndexOf.
func WithStrategy[E any](s compare.Strategy[E]) Option[E] {
	return func(t *Table[E]) { t.strategy = s }
}

// WithCapacity pre-grows the table so that no allocation happens until size
// exceeds the given capacity.
func WithCapacity[E any](capacity int) Option[E] {
	return func(t *Table[E]) {
		for t.capacity < capacity {
			t.increaseCapacity()
		}
	}
}

// WithRegion attributes the table's block allocations to the given region.
func WithRegion[E any](r *mem.Region) Option[E] {
	return func(t *Table[E]) { t.region = r }
}

// New creates a table with a single leaf block of capacity.
func New[E any](opts ...Option[E]) *Table[E] {
	t := &Table[E]{
		elems1:   [][]E{make([]E, c0)},
		capacity: c0,
		region:   mem.NewRegion("fasttable"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the number of elements in the table.
func (t *Table[E]) Size() int { return t.size }

// Capacity returns the number of element slots currently allocated.
func (t *Table[E]) Capacity() int { return t.capacity }

// IsEmpty reports whether the table holds no elements.
func (t *Table[E]) IsEmpty() bool { return t.size == 0 }

// Get returns the element at index. It panics if index is out of range.
// Kept short so the two-level fast path inlines.
func (t *Table[E]) Get(index int) E {
	if index>>r2 == 0 && index < t.size {
		return t.elems1[index>>r1][index&m0]
	}
	return t.get2(index)
}

func (t *Table[E]) get2(index int) E {
	if index < 0 || index >= t.size {
		panic(fmt.Sprintf("fasttable: index %d out of range [0,%d)", index, t.size))
	}
	if index < c2 {
		return t.elems2[index>>r2][(index>>r1)&m1][index&m0]
	}
	return t.elems3[index>>r3][(index>>r2)&m2][(index>>r1)&m1][index&m0]
}

// block returns the leaf block holding index. The caller guarantees the
// index is within capacity.
func (t *Table[E]) block(index int) []E {
	if index < c1 {
		return t.elems1[index>>r1]
	}
	if index < c2 {
		return t.elems2[index>>r2][(index>>r1)&m1]
	}
	return t.elems3[index>>r3][(index>>r2)&m2][(index>>r1)&m1]
}

// Set replaces the element at index and returns the previous value. It
// panics if index is out of range.
func (t *Table[E]) Set(index int, value E) E {
	if index < 0 || index >= t.size {
		panic(fmt.Sprintf("fasttable: index %d out of range [0,%d)", index, t.size))
	}
	blk := t.block(index)
	old := blk[index&m0]
	blk[index&m0] = value
	return old
}

// Add appends value to the end of the table, growing by one leaf block when
// size reaches capacity.
func (t *Table[E]) Add(value E) {
	i := t.size
	if i >= t.capacity {
		t.increaseCapacity()
	}
	t.block(i)[i&m0] = value
	// Size is published last so a concurrent reader bounded by Size never
	// observes an unwritten slot.
	t.size++
}

// Append appends all values in order.
func (t *Table[E]) Append(values ...E) {
	for _, v := range values {
		t.Add(v)
	}
}

// First returns the first element. It panics if the table is empty.
func (t *Table[E]) First() E {
	if t.size == 0 {
		panic("fasttable: empty table")
	}
	return t.elems1[0][0]
}

// Last returns the last element. It panics if the table is empty.
func (t *Table[E]) Last() E {
	if t.size == 0 {
		panic("fasttable: empty table")
	}
	i := t.size - 1
	return t.block(i)[i&m0]
}

// RemoveLast removes and returns the last element. It panics if the table is
// empty.
func (t *Table[E]) RemoveLast() E {
	if t.size == 0 {
		panic("fasttable: empty table")
	}
	i := t.size - 1
	blk := t.block(i)
	old := blk[i&m0]
	var zero E
	blk[i&m0] = zero // release the reference
	t.size = i
	return old
}

// Insert inserts value at index, shifting subsequent elements right. Index
// may equal Size (append position). Shifting is O(n) by design; structural
// edits are expected to be rare relative to append and access.
func (t *Table[E]) Insert(index int, value E) {
	if index < 0 || index > t.size {
		panic(fmt.Sprintf("fasttable: insertion index %d out of range [0,%d]", index, t.size))
	}
	newSize := t.size + 1
	if newSize >= t.capacity {
		t.increaseCapacity()
	}
	t.size = newSize
	for i := index; i < newSize; i++ {
		value = t.Set(i, value)
	}
}

// InsertAll inserts values at index, shifting subsequent elements right by
// len(values).
func (t *Table[E]) InsertAll(index int, values ...E) {
	if index < 0 || index > t.size {
		panic(fmt.Sprintf("fasttable: insertion index %d out of range [0,%d]", index, t.size))
	}
	shift := len(values)
	if shift == 0 {
		return
	}
	prevSize := t.size
	newSize := prevSize + shift
	for newSize >= t.capacity {
		t.increaseCapacity()
	}
	t.size = newSize
	for i := prevSize - 1; i >= index; i-- {
		t.Set(i+shift, t.Get(i))
	}
	for i, v := range values {
		t.Set(index+i, v)
	}
}

// RemoveAt removes and returns the element at index, shifting subsequent
// elements left.
func (t *Table[E]) RemoveAt(index int) E {
	if index < 0 || index >= t.size {
		panic(fmt.Sprintf("fasttable: index %d out of range [0,%d)", index, t.size))
	}
	last := t.size - 1
	obj := t.Get(last)
	for i := last - 1; i >= index; i-- {
		obj = t.Set(i, obj)
	}
	var zero E
	t.Set(last, zero) // release the reference
	t.size = last
	return obj
}

// RemoveRange removes the elements in [from, to), shifting subsequent
// elements left.
func (t *Table[E]) RemoveRange(from, to int) {
	prevSize := t.size
	if from < 0 || to < 0 || from > to || to > prevSize {
		panic(fmt.Sprintf("fasttable: range [%d,%d) out of range [0,%d)", from, to, prevSize))
	}
	for i, j := to, from; i < prevSize; i, j = i+1, j+1 {
		t.Set(j, t.Get(i))
	}
	newSize := prevSize - (to - from)
	var zero E
	for i := newSize; i < prevSize; i++ {
		t.Set(i, zero)
	}
	t.size = newSize
}

// Clear removes all elements. Capacity is retained.
func (t *Table[E]) Clear() {
	size := t.size
	t.size = 0
	for i := 0; i < size; i += c0 {
		blk := t.block(i)
		n := min(size-i, c0)
		clear(blk[:n])
	}
}

// IndexOf returns the index of the first element equal to value under the
// table's strategy, or -1 if absent.
func (t *Table[E]) IndexOf(value E) int {
	s := t.mustStrategy()
	for i := 0; i < t.size; i++ {
		if s.Equal(value, t.Get(i)) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to value under the
// table's strategy, or -1 if absent.
func (t *Table[E]) LastIndexOf(value E) int {
	s := t.mustStrategy()
	for i := t.size - 1; i >= 0; i-- {
		if s.Equal(value, t.Get(i)) {
			return i
		}
	}
	return -1
}

// Contains reports whether the table holds an element equal to value under
// the table's strategy.
func (t *Table[E]) Contains(value E) bool { return t.IndexOf(value) >= 0 }

// All returns an iterator over (index, element) pairs in index order.
func (t *Table[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < t.size; i++ {
			if !yield(i, t.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over elements in index order.
func (t *Table[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < t.size; i++ {
			if !yield(t.Get(i)) {
				return
			}
		}
	}
}

// Sort sorts the table in place using the table's strategy. Quicksort with
// first-element pivot and two-pointer partition; no allocation.
func (t *Table[E]) Sort() {
	if t.size > 1 {
		t.quicksort(0, t.size-1, t.mustStrategy())
	}
}

func (t *Table[E]) quicksort(first, last int, s compare.Strategy[E]) {
	if first < last {
		piv := t.partition(first, last, s)
		t.quicksort(first, piv-1, s)
		t.quicksort(piv+1, last, s)
	}
}

func (t *Table[E]) partition(f, l int, s compare.Strategy[E]) int {
	piv := t.Get(f)
	up, down := f, l
	for {
		for s.Compare(t.Get(up), piv) <= 0 && up < l {
			up++
		}
		for s.Compare(t.Get(down), piv) > 0 && down > f {
			down--
		}
		if up < down { // swap
			tmp := t.Get(up)
			t.Set(up, t.Get(down))
			t.Set(down, tmp)
		}
		if down <= up {
			break
		}
	}
	t.Set(f, t.Get(down))
	t.Set(down, piv)
	return down
}

// Strategy returns the table's strategy, or nil when none is configured.
func (t *Table[E]) Strategy() compare.Strategy[E] { return t.strategy }

func (t *Table[E]) mustStrategy() compare.Strategy[E] {
	if t.strategy == nil {
		panic("fasttable: no strategy configured (use WithStrategy)")
	}
	return t.strategy
}

// TrimToSize releases unused leaf blocks, reducing capacity toward the
// current size. This is the only operation that invalidates previously
// obtained block references.
func (t *Table[E]) TrimToSize() {
	for t.capacity > t.size+c0 {
		t.decreaseCapacity()
	}
}

// increaseCapacity allocates one more leaf block, materializing intermediate
// levels lazily as capacity crosses each tier threshold. Existing blocks are
// untouched.
func (t *Table[E]) increaseCapacity() {
	t.region.Run(func() {
		c := t.capacity
		t.capacity += c0
		switch {
		case c < c1:
			if len(t.elems1) == 1 && c >= c0 {
				// Widen the level-1 spine once, keeping block zero.
				tmp := make([][]E, 1<<d1)
				tmp[0] = t.elems1[0]
				t.elems1 = tmp
			}
			t.elems1[c>>r1] = make([]E, c0)
		case c < c2:
			if t.elems2 == nil {
				t.elems2 = make([][][]E, 1<<d2)
			}
			if t.elems2[c>>r2] == nil {
				t.elems2[c>>r2] = make([][]E, 1<<d1)
			}
			t.elems2[c>>r2][(c>>r1)&m1] = make([]E, c0)
		default:
			if t.elems3 == nil {
				t.elems3 = make([][][][]E, 1<<d3)
			}
			if t.elems3[c>>r3] == nil {
				t.elems3[c>>r3] = make([][][]E, 1<<d2)
			}
			if t.elems3[c>>r3][(c>>r2)&m2] == nil {
				t.elems3[c>>r3][(c>>r2)&m2] = make([][]E, 1<<d1)
			}
			t.elems3[c>>r3][(c>>r2)&m2][(c>>r1)&m1] = make([]E, c0)
		}
	})
}

func (t *Table[E]) decreaseCapacity() {
	if t.size >= t.capacity-c0 {
		return
	}
	c := t.capacity - c0
	t.capacity = c
	switch {
	case c < c1:
		t.elems1[c>>r1] = nil
		t.elems2 = nil
		t.elems3 = nil
	case c < c2:
		t.elems2[c>>r2][(c>>r1)&m1] = nil
		t.elems3 = nil
	default:
		t.elems3[c>>r3][(c>>r2)&m2][(c>>r1)&m1] = nil
	}
}
