package text

import (
	"strings"
	"testing"
)

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ascii", "Hello World"},
		{"already lower", "hello"},
		{"accented", "Héllo Wörld"},
		{"greek", "ΑΒΓ αβγ"},
		{"fragmented", strings.Repeat("AbCdEfGh ", 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := buildFragmented(tt.input, 9)
			if got := x.ToLower().String(); got != strings.ToLower(tt.input) {
				t.Errorf("ToLower = %q, want %q", got, strings.ToLower(tt.input))
			}
			if got := x.ToUpper().String(); got != strings.ToUpper(tt.input) {
				t.Errorf("ToUpper = %q, want %q", got, strings.ToUpper(tt.input))
			}
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"both sides", "  hello  ", "hello"},
		{"tabs and newlines", "\t\nhi\r\n", "hi"},
		{"nothing to trim", "hello", "hello"},
		{"all whitespace", "   \t ", ""},
		{"empty", "", ""},
		{"interior preserved", " a b ", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.input).TrimSpace().String(); got != tt.want {
				t.Errorf("TrimSpace = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrimSides(t *testing.T) {
	x := New("xxhelloxx")
	xs := NewCharSet("x")
	if got := x.TrimLeft(xs).String(); got != "helloxx" {
		t.Errorf("TrimLeft = %q", got)
	}
	if got := x.TrimRight(xs).String(); got != "xxhello" {
		t.Errorf("TrimRight = %q", got)
	}
	if got := x.Trim(xs).String(); got != "hello" {
		t.Errorf("Trim = %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"mixed whitespace", " \t\n ", true},
		{"has content", "  x  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildFragmented(tt.input, 2).IsBlank(); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	x := New("42")
	if got := x.PadLeft(5, '0').String(); got != "00042" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := x.PadRight(5, '.').String(); got != "42..." {
		t.Errorf("PadRight = %q", got)
	}
	if got := x.PadLeft(2, '0'); got.n != x.n {
		t.Error("PadLeft at width should return the receiver")
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		old, new string
		want     string
	}{
		{"single", "hello world", "world", "rope", "hello rope"},
		{"multiple", "a.b.c.d", ".", "--", "a--b--c--d"},
		{"absent", "hello", "xyz", "!", "hello"},
		{"empty old is identity", "hello", "", "!", "hello"},
		{"shrinking", "aaa", "aa", "a", "aa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFragmented(tt.input, 3).Replace(New(tt.old), New(tt.new))
			if got.String() != tt.want {
				t.Errorf("Replace = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestReplaceAny(t *testing.T) {
	seps := NewCharSet(",;")
	got := buildFragmented("a,b;c,d", 2).ReplaceAny(seps, New(" | "))
	if got.String() != "a | b | c | d" {
		t.Errorf("ReplaceAny = %q", got.String())
	}
	if clean := New("abc").ReplaceAny(seps, New("-")); clean.String() != "abc" {
		t.Errorf("ReplaceAny on clean input = %q", clean.String())
	}
}

func TestEqualFold(t *testing.T) {
	if !New("Hello").EqualFold(New("hELLO")) {
		t.Error("ASCII fold failed")
	}
	// Simple folding only: ß does not fold to SS.
	if buildFragmented("Grüße", 2).EqualFold(New("GRÜSSE")) {
		t.Error("expected simple (not full) case folding")
	}
	if !New("ΑΒΓ").EqualFold(New("αβγ")) {
		t.Error("Unicode simple fold failed")
	}
	if New("abc").EqualFold(New("abd")) {
		t.Error("distinct content reported fold-equal")
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"wide cjk", "日本", 4},
		{"mixed", "a日b", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.input).Width(); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGraphemeCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"combining accent", "é", 1},
		{"cjk", "日本語", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.input).GraphemeCount(); got != tt.want {
				t.Errorf("GraphemeCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
