package text

import (
	"iter"

	"github.com/dshills/fastcoll/mem"
)

// leafSize is the largest content a single owned leaf block holds. Short
// concatenation results are flattened into one block of this size instead of
// growing the tree.
const leafSize = 32

// node is the closed set of tree variants: two leaf kinds and one interior
// kind. No further variants exist.
type node interface {
	length() int
}

// primitive is a leaf owning a small block of bytes.
type primitive struct {
	b []byte // never mutated after construction
}

func (p *primitive) length() int { return len(p.b) }

// stringLeaf is a leaf viewing a wrapped Go string. Substrings share the
// backing string, so wrapping is free regardless of length.
type stringLeaf struct {
	s string
}

func (l *stringLeaf) length() int { return len(l.s) }

// composite is an interior node combining a head and a tail.
type composite struct {
	head, tail node
	count      int
}

func (c *composite) length() int { return c.count }

func newComposite(head, tail node) *composite {
	return &composite{head: head, tail: tail, count: head.length() + tail.length()}
}

// Text is an immutable rope over UTF-8 bytes. The zero value is the empty
// text.
type Text struct {
	n node // nil means empty
}

// Empty is the empty text.
var Empty = Text{}

// New returns a text viewing s. The string is wrapped, not copied.
func New(s string) Text {
	if len(s) == 0 {
		return Text{}
	}
	return Text{&stringLeaf{s: s}}
}

// FromBytes returns a text holding a copy of b.
func FromBytes(b []byte) Text {
	if len(b) == 0 {
		return Text{}
	}
	if len(b) <= leafSize {
		return Text{&primitive{b: append([]byte(nil), b...)}}
	}
	return New(string(b))
}

// Len returns the length in bytes.
func (t Text) Len() int {
	if t.n == nil {
		return 0
	}
	return t.n.length()
}

// IsEmpty reports whether the text has length zero.
func (t Text) IsEmpty() bool { return t.n == nil }

// At returns the byte at offset i. It panics if i is out of range.
//
// Together with Len this makes Text a compare.Sequence, so texts can key
// content-hashed maps directly.
func (t Text) At(i int) byte {
	if t.n == nil || i < 0 || i >= t.n.length() {
		panic("text: index out of range")
	}
	n := t.n
	for {
		switch v := n.(type) {
		case *primitive:
			return v.b[i]
		case *stringLeaf:
			return v.s[i]
		case *composite:
			if cesure := v.head.length(); i < cesure {
				n = v.head
			} else {
				i -= cesure
				n = v.tail
			}
		}
	}
}

// Depth returns the height of the tree; zero for leaves and the empty text.
func (t Text) Depth() int {
	return nodeDepth(t.n)
}

func nodeDepth(n node) int {
	c, ok := n.(*composite)
	if !ok {
		return 0
	}
	return 1 + max(nodeDepth(c.head), nodeDepth(c.tail))
}

// leaves yields the leaf byte runs of t in order as strings; string leaves
// are yielded without copying. Composite nodes contribute nothing
// themselves.
func (t Text) leaves() iter.Seq[string] {
	return func(yield func(string) bool) {
		if t.n != nil {
			yieldLeaves(t.n, yield)
		}
	}
}

func yieldLeaves(n node, yield func(string) bool) bool {
	switch v := n.(type) {
	case *primitive:
		return yield(string(v.b))
	case *stringLeaf:
		return yield(v.s)
	case *composite:
		return yieldLeaves(v.head, yield) && yieldLeaves(v.tail, yield)
	}
	return true
}

// flattenScratch recycles buffers used to linearize small texts.
var flattenScratch = mem.NewFactory(
	func() *[]byte { b := make([]byte, 0, 256); return &b },
	func(p *[]byte) { *p = (*p)[:0] },
)

func appendNode(dst []byte, n node) []byte {
	switch v := n.(type) {
	case *primitive:
		return append(dst, v.b...)
	case *stringLeaf:
		return append(dst, v.s...)
	case *composite:
		return appendNode(appendNode(dst, v.head), v.tail)
	}
	return dst
}

// String returns the content as a Go string, linearizing the tree.
func (t Text) String() string {
	switch v := t.n.(type) {
	case nil:
		return ""
	case *stringLeaf:
		return v.s
	case *primitive:
		return string(v.b)
	}
	p := flattenScratch.Acquire()
	*p = appendNode(*p, t.n)
	s := string(*p)
	flattenScratch.Release(p)
	return s
}

// Bytes returns the content as a fresh byte slice.
func (t Text) Bytes() []byte {
	if t.n == nil {
		return nil
	}
	return appendNode(make([]byte, 0, t.n.length()), t.n)
}

// Compare orders t against other bytewise, returning -1, 0, or +1.
func (t Text) Compare(other Text) int {
	nextA, stopA := iter.Pull(t.leaves())
	defer stopA()
	nextB, stopB := iter.Pull(other.leaves())
	defer stopB()
	var a, b string
	for {
		if len(a) == 0 {
			var ok bool
			if a, ok = nextA(); !ok {
				if len(b) > 0 {
					return -1
				}
				if _, ok := nextB(); ok {
					return -1
				}
				return 0
			}
			continue
		}
		if len(b) == 0 {
			var ok bool
			if b, ok = nextB(); !ok {
				return 1
			}
			continue
		}
		n := min(len(a), len(b))
		for i := 0; i < n; i++ {
			if a[i] != b[i] {
				if a[i] < b[i] {
					return -1
				}
				return 1
			}
		}
		a, b = a[n:], b[n:]
	}
}

// Equal reports whether t and other hold identical bytes.
func (t Text) Equal(other Text) bool {
	if t.Len() != other.Len() {
		return false
	}
	return t.Compare(other) == 0
}
