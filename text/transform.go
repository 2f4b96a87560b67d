package text

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower returns t lower-cased under Unicode default casing. The tree
// shape is preserved: composites are recursed, leaves transformed in place.
// Leaf boundaries must fall between runes for the mapping to be exact.
func (t Text) ToLower() Text {
	if t.n == nil {
		return t
	}
	return Text{caseNode(t.n, cases.Lower(language.Und))}
}

// ToUpper returns t upper-cased under Unicode default casing. See ToLower
// for the leaf-boundary caveat.
func (t Text) ToUpper() Text {
	if t.n == nil {
		return t
	}
	return Text{caseNode(t.n, cases.Upper(language.Und))}
}

func caseNode(n node, c cases.Caser) node {
	switch v := n.(type) {
	case *composite:
		// Re-concatenate rather than rebuild directly: case mappings can
		// change byte length, and short results should flatten.
		return concatNodes(caseNode(v.head, c), caseNode(v.tail, c))
	case *primitive:
		return &primitive{b: c.Bytes(v.b)}
	case *stringLeaf:
		return &stringLeaf{s: c.String(v.s)}
	}
	return n
}

// Trim returns t with leading and trailing bytes in set removed.
func (t Text) Trim(set CharSet) Text {
	return t.TrimLeft(set).TrimRight(set)
}

// TrimLeft returns t with leading bytes in set removed.
func (t Text) TrimLeft(set CharSet) Text {
	n := t.Len()
	i := 0
	for i < n && set.Contains(t.At(i)) {
		i++
	}
	return t.Sub(i, n)
}

// TrimRight returns t with trailing bytes in set removed.
func (t Text) TrimRight(set CharSet) Text {
	n := t.Len()
	for n > 0 && set.Contains(t.At(n-1)) {
		n--
	}
	return t.Sub(0, n)
}

// TrimSpace returns t with leading and trailing ASCII whitespace removed.
func (t Text) TrimSpace() Text { return t.Trim(Whitespace) }

// IsBlank reports whether t is empty or all ASCII whitespace.
func (t Text) IsBlank() bool {
	for leaf := range t.leaves() {
		for i := 0; i < len(leaf); i++ {
			if !Whitespace.Contains(leaf[i]) {
				return false
			}
		}
	}
	return true
}

// PadLeft returns t left-padded with pad bytes to at least width bytes.
func (t Text) PadLeft(width int, pad byte) Text {
	n := t.Len()
	if n >= width {
		return t
	}
	return Byte(pad).Repeat(width - n).Concat(t)
}

// PadRight returns t right-padded with pad bytes to at least width bytes.
func (t Text) PadRight(width int, pad byte) Text {
	n := t.Len()
	if n >= width {
		return t
	}
	return t.Concat(Byte(pad).Repeat(width - n))
}

// Replace returns t with every non-overlapping occurrence of old replaced
// by new. An empty old returns t unchanged.
func (t Text) Replace(old, new Text) Text {
	if old.IsEmpty() {
		return t
	}
	result := Text{}
	rest := t
	for {
		i := rest.Index(old, 0)
		if i < 0 {
			return result.Concat(rest)
		}
		result = result.Concat(rest.Sub(0, i)).Concat(new)
		rest = rest.Sub(i+old.Len(), rest.Len())
	}
}

// ReplaceAny returns t with every byte in set replaced by replacement.
func (t Text) ReplaceAny(set CharSet, replacement Text) Text {
	result := Text{}
	rest := t
	for {
		i := rest.IndexOfAny(set, 0)
		if i < 0 {
			return result.Concat(rest)
		}
		result = result.Concat(rest.Sub(0, i)).Concat(replacement)
		rest = rest.Sub(i+1, rest.Len())
	}
}

// EqualFold reports whether t and other are equal under Unicode case
// folding. Both texts are linearized for the comparison.
func (t Text) EqualFold(other Text) bool {
	return strings.EqualFold(t.String(), other.String())
}

// Width returns the monospace display width of t in terminal cells, per
// Unicode east-asian-width conventions. The text is linearized.
func (t Text) Width() int {
	return uniseg.StringWidth(t.String())
}

// GraphemeCount returns the number of user-perceived characters (grapheme
// clusters) in t. The text is linearized.
func (t Text) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(t.String())
}
