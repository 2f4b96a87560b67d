package compare

// Sequence is a read-only view of a byte sequence. It is the key abstraction
// for content-addressed lookup: any two Sequence implementations with the
// same bytes hash identically under Lexical and compare equal, regardless of
// their backing representation.
type Sequence interface {
	Len() int
	At(i int) byte
}

// Str adapts a plain Go string to the Sequence interface.
type Str string

// Len returns the byte length of the string.
func (s Str) Len() int { return len(s) }

// At returns the byte at index i.
func (s Str) At(i int) byte { return s[i] }

func (s Str) String() string { return string(s) }

type lexical struct{}

// Lexical returns the content strategy for Sequence keys: the hash is the
// classic 31-multiplier byte hash, equality is bytewise content equality,
// and order is lexicographic (shorter prefix first).
func Lexical() Strategy[Sequence] { return lexical{} }

func (lexical) Hash(v Sequence) uint32 {
	if v == nil {
		return 0
	}
	var h uint32
	for i, n := 0, v.Len(); i < n; i++ {
		h = 31*h + uint32(v.At(i))
	}
	return h
}

func (lexical) Equal(a, b Sequence) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Fast path when both sides are backed by strings.
	as, aok := a.(Str)
	bs, bok := b.(Str)
	if aok && bok {
		return as == bs
	}
	n := a.Len()
	if b.Len() != n {
		return false
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

func (lexical) Compare(a, b Sequence) int {
	an, bn := a.Len(), b.Len()
	n := min(an, bn)
	for i := 0; i < n; i++ {
		ca, cb := a.At(i), b.At(i)
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	return an - bn
}

func (lexical) String() string { return "lexical" }
