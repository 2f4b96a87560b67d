package fasttable

import (
	"errors"
	"fmt"
	"iter"
)

// Sub holds a write-through view over a contiguous range of a Table. Reads
// and Set go straight to the backing table; operations that would change the
// view's length panic with an error wrapping errors.ErrUnsupported.
//
// A Sub is invalidated by structural modification of the backing table.
type Sub[E any] struct {
	table  *Table[E]
	offset int
	length int
}

// Sub returns a view over [from, to) of the table.
func (t *Table[E]) Sub(from, to int) *Sub[E] {
	if from < 0 || to < 0 || from > to || to > t.size {
		panic(fmt.Sprintf("fasttable: range [%d,%d) out of range [0,%d)", from, to, t.size))
	}
	return &Sub[E]{table: t, offset: from, length: to - from}
}

// Size returns the number of elements in the view.
func (s *Sub[E]) Size() int { return s.length }

// IsEmpty reports whether the view is empty.
func (s *Sub[E]) IsEmpty() bool { return s.length == 0 }

// Get returns the element at index within the view.
func (s *Sub[E]) Get(index int) E {
	if index < 0 || index >= s.length {
		panic(fmt.Sprintf("fasttable: index %d out of range [0,%d)", index, s.length))
	}
	return s.table.Get(s.offset + index)
}

// Set replaces the element at index within the view, writing through to the
// backing table, and returns the previous value.
func (s *Sub[E]) Set(index int, value E) E {
	if index < 0 || index >= s.length {
		panic(fmt.Sprintf("fasttable: index %d out of range [0,%d)", index, s.length))
	}
	return s.table.Set(s.offset+index, value)
}

// IndexOf returns the index within the view of the first element equal to
// value under the backing table's strategy, or -1 if absent.
func (s *Sub[E]) IndexOf(value E) int {
	st := s.table.mustStrategy()
	for i := 0; i < s.length; i++ {
		if st.Equal(value, s.table.Get(s.offset+i)) {
			return i
		}
	}
	return -1
}

// Contains reports whether the view holds an element equal to value under
// the backing table's strategy.
func (s *Sub[E]) Contains(value E) bool { return s.IndexOf(value) >= 0 }

// All returns an iterator over (index, element) pairs of the view.
func (s *Sub[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(i, s.table.Get(s.offset+i)) {
				return
			}
		}
	}
}

// Sub returns a narrower view over [from, to) of this view, sharing the same
// backing table.
func (s *Sub[E]) Sub(from, to int) *Sub[E] {
	if from < 0 || to < 0 || from > to || to > s.length {
		panic(fmt.Sprintf("fasttable: range [%d,%d) out of range [0,%d)", from, to, s.length))
	}
	return &Sub[E]{table: s.table, offset: s.offset + from, length: to - from}
}

var errViewResize = fmt.Errorf("fasttable: cannot change length of a sub view: %w", errors.ErrUnsupported)

// Insert always panics: a view cannot change length.
func (s *Sub[E]) Insert(index int, value E) { panic(errViewResize) }

// RemoveAt always panics: a view cannot change length.
func (s *Sub[E]) RemoveAt(index int) E { panic(errViewResize) }

// Clear always panics: a view cannot change length.
func (s *Sub[E]) Clear() { panic(errViewResize) }
