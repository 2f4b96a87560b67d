package text

import (
	"strings"
	"testing"
)

func TestIndexOfByte(t *testing.T) {
	s := "the quick brown fox jumps over the lazy dog"
	x := buildFragmented(s, 5)
	tests := []struct {
		name string
		c    byte
		from int
		want int
	}{
		{"first hit", 'q', 0, 4},
		{"from skips first", 'o', 13, 17},
		{"from at hit", 'q', 4, 4},
		{"absent", 'z', 30, -1},
		{"negative from", 't', -5, 0},
		{"from past end", 't', len(s), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := x.IndexOfByte(tt.c, tt.from); got != tt.want {
				t.Errorf("IndexOfByte(%q, %d) = %d, want %d", tt.c, tt.from, got, tt.want)
			}
		})
	}
}

func TestLastIndexOfByte(t *testing.T) {
	s := "abcabcabc"
	x := buildFragmented(s, 2)
	tests := []struct {
		name   string
		c      byte
		before int
		want   int
	}{
		{"whole text", 'b', len(s), 7},
		{"window excludes last", 'b', 7, 4},
		{"window before first", 'b', 1, -1},
		{"absent", 'z', len(s), -1},
		{"before past end clamps", 'c', 100, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := x.LastIndexOfByte(tt.c, tt.before); got != tt.want {
				t.Errorf("LastIndexOfByte(%q, %d) = %d, want %d", tt.c, tt.before, got, tt.want)
			}
		})
	}
}

func TestCharSet(t *testing.T) {
	vowels := NewCharSet("aeiou")
	if !vowels.Contains('a') || !vowels.Contains('u') {
		t.Error("Contains missed a member")
	}
	if vowels.Contains('b') || vowels.Contains(0) || vowels.Contains(255) {
		t.Error("Contains reported a non-member")
	}
	if !Whitespace.Contains(' ') || !Whitespace.Contains('\n') || Whitespace.Contains('x') {
		t.Error("Whitespace set wrong")
	}
}

func TestIndexOfAny(t *testing.T) {
	x := buildFragmented("key = value; other", 4)
	seps := NewCharSet("=;")
	if got := x.IndexOfAny(seps, 0); got != 4 {
		t.Errorf("IndexOfAny = %d, want 4", got)
	}
	if got := x.IndexOfAny(seps, 5); got != 11 {
		t.Errorf("IndexOfAny from 5 = %d, want 11", got)
	}
	if got := x.LastIndexOfAny(seps, x.Len()); got != 11 {
		t.Errorf("LastIndexOfAny = %d, want 11", got)
	}
	if got := x.LastIndexOfAny(seps, 4); got != -1 {
		t.Errorf("LastIndexOfAny before 4 = %d, want -1", got)
	}
}

func TestIndex(t *testing.T) {
	s := "one two three two one"
	x := buildFragmented(s, 6) // substring spans leaf boundaries
	tests := []struct {
		name string
		sub  string
		from int
		want int
	}{
		{"word", "two", 0, 4},
		{"second occurrence", "two", 5, 14},
		{"across boundary", "e two t", 0, 2},
		{"absent", "four", 0, -1},
		{"empty matches at from", "", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := x.Index(New(tt.sub), tt.from); got != tt.want {
				t.Errorf("Index(%q, %d) = %d, want %d", tt.sub, tt.from, got, tt.want)
			}
		})
	}

	if got := x.LastIndex(New("two")); got != 14 {
		t.Errorf("LastIndex = %d, want 14", got)
	}
	if !x.Contains(New("three")) || x.Contains(New("zero")) {
		t.Error("Contains gave wrong answer")
	}
}

func TestStartsEndsWith(t *testing.T) {
	x := buildFragmented("hello rope world", 3)
	if !x.StartsWith(New("hello")) || x.StartsWith(New("world")) {
		t.Error("StartsWith gave wrong answer")
	}
	if !x.EndsWith(New("world")) || x.EndsWith(New("hello")) {
		t.Error("EndsWith gave wrong answer")
	}
	if !x.StartsWith(Empty) || !x.EndsWith(Empty) {
		t.Error("empty affix should always match")
	}
	if Empty.StartsWith(New("a")) {
		t.Error("non-empty prefix of empty text")
	}
}

func TestSearchMatchesStrings(t *testing.T) {
	// Cross-check byte search against the strings package on a larger
	// fragmented text.
	s := strings.Repeat("mississippi river ", 40)
	x := buildFragmented(s, 13)
	for _, c := range []byte{'m', 's', 'r', 'z'} {
		if got, want := x.IndexOfByte(c, 100), indexFrom(s, c, 100); got != want {
			t.Errorf("IndexOfByte(%q, 100) = %d, want %d", c, got, want)
		}
		if got, want := x.LastIndexOfByte(c, 300), strings.LastIndexByte(s[:300], c); got != want {
			t.Errorf("LastIndexOfByte(%q, 300) = %d, want %d", c, got, want)
		}
	}
}

func indexFrom(s string, c byte, from int) int {
	if i := strings.IndexByte(s[from:], c); i >= 0 {
		return from + i
	}
	return -1
}
