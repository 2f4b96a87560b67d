package text

import "fmt"

// Concat returns the concatenation of t and other. Either operand being
// empty returns the other unchanged. A combined result small enough for one
// leaf block is flattened instead of growing the tree; otherwise the
// weight-balance rule applies: when one side is more than twice the other
// and the larger side is composite, its near child is folded into the
// smaller side first, so depth stays O(log n) across arbitrary
// concatenation sequences.
func (t Text) Concat(other Text) Text {
	if t.n == nil {
		return other
	}
	if other.n == nil {
		return t
	}
	return Text{concatNodes(t.n, other.n)}
}

func concatNodes(l, r node) node {
	if l.length()+r.length() <= leafSize {
		b := make([]byte, 0, l.length()+r.length())
		b = appendNode(b, l)
		b = appendNode(b, r)
		return &primitive{b: b}
	}
	head, tail := l, r
	if head.length()<<1 < tail.length() {
		if c, ok := tail.(*composite); ok {
			// Rotate so the small side merges with the smaller child.
			if c.head.length() > c.tail.length() {
				c = rotateRight(c)
			}
			head = concatNodes(head, c.head)
			tail = c.tail
		}
	} else if tail.length()<<1 < head.length() {
		if c, ok := head.(*composite); ok {
			if c.tail.length() > c.head.length() {
				c = rotateLeft(c)
			}
			tail = concatNodes(c.tail, tail)
			head = c.head
		}
	}
	return newComposite(head, tail)
}

// rotateRight promotes the head's children: (A+B)+C becomes A+(B+C).
func rotateRight(c *composite) *composite {
	h, ok := c.head.(*composite)
	if !ok {
		return c
	}
	return newComposite(h.head, newComposite(h.tail, c.tail))
}

// rotateLeft promotes the tail's children: A+(B+C) becomes (A+B)+C.
func rotateLeft(c *composite) *composite {
	t, ok := c.tail.(*composite)
	if !ok {
		return c
	}
	return newComposite(newComposite(c.head, t.head), t.tail)
}

// Sub returns the text holding bytes [start, end). It panics when the range
// is out of bounds. The result shares structure with t.
func (t Text) Sub(start, end int) Text {
	n := t.Len()
	if start < 0 || end < start || end > n {
		panic(fmt.Sprintf("text: range [%d,%d) out of range [0,%d)", start, end, n))
	}
	if start == end {
		return Text{}
	}
	return Text{subNode(t.n, start, end)}
}

// subNode descends the tree, splitting at each composite's cesure (the head
// length) and concatenating the overlapping halves.
func subNode(n node, start, end int) node {
	if start == 0 && end == n.length() {
		return n
	}
	switch v := n.(type) {
	case *primitive:
		return &primitive{b: v.b[start:end]}
	case *stringLeaf:
		return &stringLeaf{s: v.s[start:end]}
	case *composite:
		cesure := v.head.length()
		if end <= cesure {
			return subNode(v.head, start, end)
		}
		if start >= cesure {
			return subNode(v.tail, start-cesure, end-cesure)
		}
		return concatNodes(subNode(v.head, start, cesure), subNode(v.tail, 0, end-cesure))
	}
	return n
}

// Insert returns t with other inserted at byte offset i. It panics when i is
// out of bounds.
func (t Text) Insert(i int, other Text) Text {
	n := t.Len()
	if i < 0 || i > n {
		panic(fmt.Sprintf("text: offset %d out of range [0,%d]", i, n))
	}
	return t.Sub(0, i).Concat(other).Concat(t.Sub(i, n))
}

// Delete returns t with bytes [start, end) removed. It panics when the
// range is out of bounds.
func (t Text) Delete(start, end int) Text {
	n := t.Len()
	if start < 0 || end < start || end > n {
		panic(fmt.Sprintf("text: range [%d,%d) out of range [0,%d)", start, end, n))
	}
	return t.Sub(0, start).Concat(t.Sub(end, n))
}

// Repeat returns t concatenated with itself count times. Structure sharing
// makes the result's memory O(Len), not O(Len*count).
func (t Text) Repeat(count int) Text {
	if count < 0 {
		panic("text: negative repeat count")
	}
	result := Text{}
	doubling := t
	for count > 0 {
		if count&1 != 0 {
			result = result.Concat(doubling)
		}
		doubling = doubling.Concat(doubling)
		count >>= 1
	}
	return result
}
