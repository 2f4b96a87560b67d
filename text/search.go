package text

import "strings"

// CharSet is a set of byte values for multi-character searches and
// trimming. The zero value is the empty set.
type CharSet struct {
	bits [4]uint64
}

// NewCharSet returns the set holding every byte of chars.
func NewCharSet(chars string) CharSet {
	var s CharSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		s.bits[c>>6] |= 1 << (c & 63)
	}
	return s
}

// Contains reports whether c is in the set.
func (s CharSet) Contains(c byte) bool {
	return s.bits[c>>6]&(1<<(c&63)) != 0
}

// Whitespace is the ASCII whitespace set.
var Whitespace = NewCharSet(" \t\n\v\f\r")

// IndexOfByte returns the byte offset of the first occurrence of c at or
// after from, or -1. Composite nodes are searched head first and the walk
// stops at the first hit.
func (t Text) IndexOfByte(c byte, from int) int {
	if from < 0 {
		from = 0
	}
	off := 0
	result := -1
	for leaf := range t.leaves() {
		if off+len(leaf) > from {
			skip := max(0, from-off)
			if i := strings.IndexByte(leaf[skip:], c); i >= 0 {
				result = off + skip + i
				break
			}
		}
		off += len(leaf)
	}
	return result
}

// LastIndexOfByte returns the byte offset of the last occurrence of c
// strictly before before, or -1. Pass Len() to search the whole text.
func (t Text) LastIndexOfByte(c byte, before int) int {
	if before > t.Len() {
		before = t.Len()
	}
	off := 0
	result := -1
	for leaf := range t.leaves() {
		if off >= before {
			break
		}
		limit := min(len(leaf), before-off)
		if i := strings.LastIndexByte(leaf[:limit], c); i >= 0 {
			result = off + i
		}
		off += len(leaf)
	}
	return result
}

// IndexOfAny returns the byte offset of the first byte in set at or after
// from, or -1.
func (t Text) IndexOfAny(set CharSet, from int) int {
	if from < 0 {
		from = 0
	}
	off := 0
	result := -1
	for leaf := range t.leaves() {
		if off+len(leaf) > from {
			for i := max(0, from-off); i < len(leaf); i++ {
				if set.Contains(leaf[i]) {
					result = off + i
					break
				}
			}
			if result >= 0 {
				break
			}
		}
		off += len(leaf)
	}
	return result
}

// LastIndexOfAny returns the byte offset of the last byte in set strictly
// before before, or -1.
func (t Text) LastIndexOfAny(set CharSet, before int) int {
	if before > t.Len() {
		before = t.Len()
	}
	off := 0
	result := -1
	for leaf := range t.leaves() {
		if off >= before {
			break
		}
		limit := min(len(leaf), before-off)
		for i := limit - 1; i >= 0; i-- {
			if set.Contains(leaf[i]) {
				result = off + i
				break
			}
		}
		off += len(leaf)
	}
	return result
}

// Index returns the byte offset of the first occurrence of sub at or after
// from, or -1. The text is linearized for the scan.
func (t Text) Index(sub Text, from int) int {
	if from < 0 {
		from = 0
	}
	if from > t.Len() {
		return -1
	}
	if i := strings.Index(t.String()[from:], sub.String()); i >= 0 {
		return from + i
	}
	return -1
}

// LastIndex returns the byte offset of the last occurrence of sub, or -1.
func (t Text) LastIndex(sub Text) int {
	return strings.LastIndex(t.String(), sub.String())
}

// Contains reports whether sub occurs in t.
func (t Text) Contains(sub Text) bool { return t.Index(sub, 0) >= 0 }

// StartsWith reports whether t begins with prefix.
func (t Text) StartsWith(prefix Text) bool {
	n := prefix.Len()
	return n <= t.Len() && t.Sub(0, n).Equal(prefix)
}

// EndsWith reports whether t ends with suffix.
func (t Text) EndsWith(suffix Text) bool {
	n := suffix.Len()
	return n <= t.Len() && t.Sub(t.Len()-n, t.Len()).Equal(suffix)
}
