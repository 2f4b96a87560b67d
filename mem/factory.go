package mem

import "sync"

// Factory hands out and reclaims instances of T through an internal
// free-list. Acquire returns a recycled instance when one is available and a
// fresh one otherwise; Release resets the instance and returns it to the
// free-list. A Factory is safe for concurrent use.
type Factory[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// NewFactory creates a factory producing instances with newFn. If reset is
// non-nil it runs on every released instance before recycling; it must
// return the instance to a state indistinguishable from freshly created.
func NewFactory[T any](newFn func() T, reset func(T)) *Factory[T] {
	f := &Factory[T]{reset: reset}
	f.pool.New = func() any { return newFn() }
	return f
}

// Acquire returns a new or recycled instance.
func (f *Factory[T]) Acquire() T {
	return f.pool.Get().(T)
}

// Release recycles an instance. The caller must not retain any reference to
// it afterward.
func (f *Factory[T]) Release(v T) {
	if f.reset != nil {
		f.reset(v)
	}
	f.pool.Put(v)
}
