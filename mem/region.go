package mem

import "sync/atomic"

// Region is a named long-lived allocation scope. Code that allocates
// structure meant to outlive the calling goroutine's transient working set
// (bucket arrays, segmented-table blocks, interned values) runs inside
// Region.Run. Under the Go runtime the attribution is advisory; the region
// records how many blocks of work it has executed so growth behavior stays
// observable.
type Region struct {
	name string
	runs atomic.Int64
}

// Immortal is the process-lifetime region. Values allocated in it are
// intentionally permanent: interned texts and canonical indexes are never
// released.
var Immortal = NewRegion("immortal")

// NewRegion creates a region with the given name.
func NewRegion(name string) *Region {
	return &Region{name: name}
}

// Run executes fn with its allocations attributed to the region. Run does
// not synchronize; callers needing mutual exclusion hold their own lock.
func (r *Region) Run(fn func()) {
	r.runs.Add(1)
	fn()
}

// Name returns the region's name.
func (r *Region) Name() string { return r.name }

// Runs returns how many blocks of work have executed in the region.
func (r *Region) Runs() int64 { return r.runs.Load() }
