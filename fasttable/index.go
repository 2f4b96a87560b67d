package fasttable

import (
	"strconv"
	"sync"

	"github.com/dshills/fastcoll/mem"
)

// Index is an interned, immutable integer position. At most one Index exists
// per value process-wide, so indices can be compared by pointer and used as
// identity-hashed map keys without boxing on each lookup.
type Index struct {
	value int
}

// Zero is the index holding value 0.
var Zero = &Index{0}

var (
	indexLock sync.RWMutex
	positive  = func() *Table[*Index] {
		t := New(WithRegion[*Index](mem.Immortal))
		t.Add(Zero)
		return t
	}()
	negative = New(WithRegion[*Index](mem.Immortal))
)

const indexGrowth = 16 // indices created per interning pass

// ValueOf returns the unique Index for value, creating it (and any indices
// between it and the closest existing one) on first use. Creation is
// serialized; lookups of already-interned values take only a read lock.
func ValueOf(value int) *Index {
	indexLock.RLock()
	ix := lookupIndex(value)
	indexLock.RUnlock()
	if ix != nil {
		return ix
	}
	indexLock.Lock()
	defer indexLock.Unlock()
	for lookupIndex(value) == nil {
		if value >= 0 {
			augmentPositive()
		} else {
			augmentNegative()
		}
	}
	return lookupIndex(value)
}

// lookupIndex returns the interned index for value, or nil when not yet
// created. Callers hold indexLock.
func lookupIndex(value int) *Index {
	if value >= 0 {
		if value < positive.Size() {
			return positive.Get(value)
		}
		return nil
	}
	i := -value - 1
	if i < negative.Size() {
		return negative.Get(i)
	}
	return nil
}

func augmentPositive() {
	mem.Immortal.Run(func() {
		base := positive.Size()
		for i := 0; i < indexGrowth; i++ {
			positive.Add(&Index{base + i})
		}
	})
}

func augmentNegative() {
	mem.Immortal.Run(func() {
		base := negative.Size()
		for i := 0; i < indexGrowth; i++ {
			negative.Add(&Index{-(base + i) - 1})
		}
	})
}

// Value returns the integer this index holds.
func (ix *Index) Value() int { return ix.value }

// Next returns the index holding Value()+1.
func (ix *Index) Next() *Index { return ValueOf(ix.value + 1) }

// Previous returns the index holding Value()-1.
func (ix *Index) Previous() *Index { return ValueOf(ix.value - 1) }

// String returns the decimal representation of the index value.
func (ix *Index) String() string { return strconv.Itoa(ix.value) }
