package compare

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"unsafe"
)

// Strategy bundles the hash, equality, and ordering operations a collection
// needs from its element type. Hash must be consistent with Equal: values
// that compare equal must hash identically.
//
// Strategies are stateless values and safe for concurrent use. A strategy is
// fixed at collection construction time; replacing it on a live, populated
// collection leaves existing entries hashed under the old strategy and is
// unsupported.
type Strategy[T any] interface {
	Hash(v T) uint32
	Equal(a, b T) bool

	// Compare orders a against b, returning a negative, zero, or positive
	// result. Strategies without a meaningful order (Direct, Identity)
	// panic.
	Compare(a, b T) int
}

// Shared seed for all maphash-backed strategies. One seed per process keeps
// hashes stable across collection instances within a run.
var hashSeed = maphash.MakeSeed()

// mix spreads clustered hash bits, a cheap supplemental hash for
// ill-conditioned inputs whose entropy sits in the high bits.
func mix(h uint32) uint32 {
	h += ^(h << 9)
	h ^= h >> 14
	h += h << 4
	return h ^ (h >> 10)
}

type natural[T cmp.Ordered] struct{}

// Natural returns the default strategy for ordered primitive types:
// maphash-based hashing, == equality, and cmp.Compare ordering.
func Natural[T cmp.Ordered]() Strategy[T] { return natural[T]{} }

func (natural[T]) Hash(v T) uint32      { return uint32(maphash.Comparable(hashSeed, v)) }
func (natural[T]) Equal(a, b T) bool    { return a == b }
func (natural[T]) Compare(a, b T) int   { return cmp.Compare(a, b) }
func (natural[T]) String() string       { return "natural" }

type direct[T comparable] struct{}

// Direct returns a hash/equality strategy for any comparable type. The
// returned strategy has no order; Compare panics.
func Direct[T comparable]() Strategy[T] { return direct[T]{} }

func (direct[T]) Hash(v T) uint32   { return uint32(maphash.Comparable(hashSeed, v)) }
func (direct[T]) Equal(a, b T) bool { return a == b }
func (direct[T]) Compare(a, b T) int {
	panic(fmt.Sprintf("compare: no order defined for %T", *new(T)))
}
func (direct[T]) String() string { return "direct" }

type rehash[T any] struct {
	base Strategy[T]
}

// Rehash wraps a strategy, spreading its hash bits before use. Intended for
// key types whose natural hashes cluster in the low bits; equality and order
// are delegated unchanged.
func Rehash[T any](base Strategy[T]) Strategy[T] { return rehash[T]{base} }

func (r rehash[T]) Hash(v T) uint32    { return mix(r.base.Hash(v)) }
func (r rehash[T]) Equal(a, b T) bool  { return r.base.Equal(a, b) }
func (r rehash[T]) Compare(a, b T) int { return r.base.Compare(a, b) }
func (r rehash[T]) String() string     { return "rehash" }

type identity[T any] struct{}

// Identity returns a strategy over *T keys compared by pointer identity.
// Addresses are rehashed since allocation alignment zeroes their low bits.
// The returned strategy has no order; Compare panics.
func Identity[T any]() Strategy[*T] { return identity[T]{} }

func (identity[T]) Hash(v *T) uint32 {
	return mix(uint32(uintptr(unsafe.Pointer(v))))
}
func (identity[T]) Equal(a, b *T) bool { return a == b }
func (identity[T]) Compare(a, b *T) int {
	panic("compare: no order defined for identity keys")
}
func (identity[T]) String() string { return "identity" }

type funcStrategy[T any] struct {
	hash    func(T) uint32
	equal   func(a, b T) bool
	compare func(a, b T) int
}

// Func builds a strategy from closures. The compare argument may be nil,
// in which case Compare panics.
func Func[T any](hash func(T) uint32, equal func(a, b T) bool, compare func(a, b T) int) Strategy[T] {
	return funcStrategy[T]{hash, equal, compare}
}

func (f funcStrategy[T]) Hash(v T) uint32   { return f.hash(v) }
func (f funcStrategy[T]) Equal(a, b T) bool { return f.equal(a, b) }
func (f funcStrategy[T]) Compare(a, b T) int {
	if f.compare == nil {
		panic("compare: no order defined for func strategy")
	}
	return f.compare(a, b)
}
