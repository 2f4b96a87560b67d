package mem

import (
	"sync"
	"testing"
)

type scratch struct {
	buf  []byte
	dirty bool
}

func TestFactoryAcquireRelease(t *testing.T) {
	f := NewFactory(
		func() *scratch { return &scratch{buf: make([]byte, 0, 16)} },
		func(s *scratch) { s.buf = s.buf[:0]; s.dirty = false },
	)

	s := f.Acquire()
	if s == nil {
		t.Fatal("Acquire returned nil")
	}
	s.buf = append(s.buf, 'x')
	s.dirty = true
	f.Release(s)

	// Whatever Acquire hands back next, recycled or fresh, must be reset.
	s2 := f.Acquire()
	if len(s2.buf) != 0 || s2.dirty {
		t.Errorf("recycled value not reset: len=%d dirty=%v", len(s2.buf), s2.dirty)
	}
}

func TestFactoryNilReset(t *testing.T) {
	f := NewFactory(func() *int { return new(int) }, nil)
	v := f.Acquire()
	*v = 42
	f.Release(v)
	if got := f.Acquire(); got == nil {
		t.Fatal("Acquire returned nil")
	}
}

func TestFactoryConcurrent(t *testing.T) {
	f := NewFactory(
		func() *scratch { return &scratch{} },
		func(s *scratch) { s.buf = s.buf[:0] },
	)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s := f.Acquire()
				s.buf = append(s.buf, byte(j))
				f.Release(s)
			}
		}()
	}
	wg.Wait()
}

func TestRegionRun(t *testing.T) {
	r := NewRegion("test")
	if r.Name() != "test" {
		t.Errorf("Name() = %q, want %q", r.Name(), "test")
	}

	ran := false
	r.Run(func() { ran = true })
	if !ran {
		t.Error("Run did not invoke the function")
	}
	r.Run(func() {})
	if got := r.Runs(); got != 2 {
		t.Errorf("Runs() = %d, want 2", got)
	}
}

func TestImmortal(t *testing.T) {
	if Immortal == nil {
		t.Fatal("Immortal region is nil")
	}
	if Immortal.Name() != "immortal" {
		t.Errorf("Immortal.Name() = %q", Immortal.Name())
	}
	before := Immortal.Runs()
	Immortal.Run(func() {})
	if Immortal.Runs() != before+1 {
		t.Error("Immortal.Run did not count")
	}
}
