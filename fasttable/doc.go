// Package fasttable provides a random-access table with smooth capacity
// growth: no array is ever resized or copied, so a reference into the table's
// storage stays valid until an explicit shrink.
//
// Storage is segmented across up to four nested array levels. Element i is
// located by shifting and masking i across the levels, giving O(1) access
// while capacity grows one fixed-size leaf block at a time. Appending never
// reallocates existing blocks; large tables never require a large contiguous
// allocation.
//
// Basic usage:
//
//	t := fasttable.New[int](fasttable.WithStrategy(compare.Natural[int]()))
//	t.Add(3)
//	t.Add(1)
//	t.Sort()          // in-place quicksort, no allocation
//	v := t.Get(0)     // 1
//
// Positional operations (Get, Set, Insert, RemoveAt) panic on out-of-range
// indices, matching slice semantics. Sub returns a write-through view;
// structural mutation through a view panics with errors.ErrUnsupported
// because shifting through a window is unsafe with respect to the parent's
// extents.
//
// The package also provides Index, a canonical interned cursor per int value.
// Iterating with Index values allocates nothing.
package fasttable
