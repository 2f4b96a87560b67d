package fasttable

import "github.com/dshills/fastcoll/mem"

// Iterator walks a Table in index order and supports removal and replacement
// of the element most recently returned by Next or Prev. Iterators are
// recycled through a per-table free list; call Release when done to return
// one.
//
// An Iterator is invalidated by structural modification of the table other
// than through the iterator itself.
type Iterator[E any] struct {
	table   *Table[E]
	next    int
	end     int
	current int // index returned by the last Next/Prev, -1 when none
}

func (t *Table[E]) iterPool() *mem.Factory[*Iterator[E]] {
	if t.iterators == nil {
		t.iterators = mem.NewFactory(
			func() *Iterator[E] { return &Iterator[E]{} },
			func(it *Iterator[E]) { *it = Iterator[E]{} },
		)
	}
	return t.iterators
}

// Iterate returns an iterator positioned before the first element.
func (t *Table[E]) Iterate() *Iterator[E] {
	it := t.iterPool().Acquire()
	it.table = t
	it.next = 0
	it.end = t.size
	it.current = -1
	return it
}

// Release returns the iterator to its table's free list. The iterator must
// not be used afterwards.
func (it *Iterator[E]) Release() {
	t := it.table
	if t != nil {
		t.iterPool().Release(it)
	}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[E]) HasNext() bool { return it.next < it.end }

// Next returns the next element. It panics when no element remains.
func (it *Iterator[E]) Next() E {
	if it.next >= it.end {
		panic("fasttable: iterator has no next element")
	}
	it.current = it.next
	it.next++
	return it.table.Get(it.current)
}

// HasPrev reports whether Prev would return an element.
func (it *Iterator[E]) HasPrev() bool { return it.next > 0 }

// Prev returns the previous element. It panics when no element remains.
func (it *Iterator[E]) Prev() E {
	if it.next <= 0 {
		panic("fasttable: iterator has no previous element")
	}
	it.next--
	it.current = it.next
	return it.table.Get(it.current)
}

// NextIndex returns the index of the element Next would return.
func (it *Iterator[E]) NextIndex() int { return it.next }

// Set replaces the element last returned by Next or Prev. It panics if
// neither has been called, or if Remove was called since.
func (it *Iterator[E]) Set(value E) {
	if it.current < 0 {
		panic("fasttable: iterator set without a current element")
	}
	it.table.Set(it.current, value)
}

// Remove removes the element last returned by Next or Prev. It panics if
// neither has been called, or if Remove was already called since.
func (it *Iterator[E]) Remove() {
	if it.current < 0 {
		panic("fasttable: iterator remove without a current element")
	}
	it.table.RemoveAt(it.current)
	if it.current < it.next {
		it.next--
	}
	it.end--
	it.current = -1
}
