package text

import "testing"

// FuzzConcatSub checks that any split-and-recombine sequence preserves
// content exactly.
func FuzzConcatSub(f *testing.F) {
	f.Add("", 0)
	f.Add("hello", 2)
	f.Add("hello world, this is a longer piece of content", 10)
	f.Add("日本語テキスト", 3)
	f.Add("\x00\x01\xff", 1)

	f.Fuzz(func(t *testing.T, s string, k int) {
		x := New(s)
		if k < 0 {
			k = -k
		}
		if len(s) > 0 {
			k %= len(s) + 1
		} else {
			k = 0
		}
		head, tail := x.Sub(0, k), x.Sub(k, len(s))
		if got := head.Concat(tail).String(); got != s {
			t.Errorf("round trip = %q, want %q", got, s)
		}
	})
}

// FuzzInsertDelete checks that Delete undoes Insert at any offset.
func FuzzInsertDelete(f *testing.F) {
	f.Add("hello", 0, "x")
	f.Add("hello", 5, "world")
	f.Add("", 0, "a")
	f.Add("abc", 1, "")

	f.Fuzz(func(t *testing.T, base string, at int, ins string) {
		if at < 0 {
			at = -at
		}
		if len(base) > 0 {
			at %= len(base) + 1
		} else {
			at = 0
		}
		x := New(base).Insert(at, New(ins))
		if x.Len() != len(base)+len(ins) {
			t.Fatalf("Len() = %d, want %d", x.Len(), len(base)+len(ins))
		}
		back := x.Delete(at, at+len(ins))
		if back.String() != base {
			t.Errorf("delete did not undo insert: %q", back.String())
		}
	})
}

// FuzzSearch cross-checks rope byte search against direct string scanning.
func FuzzSearch(f *testing.F) {
	f.Add("mississippi", byte('s'), 3)
	f.Add("", byte('a'), 0)
	f.Add("aaa", byte('a'), 1)

	f.Fuzz(func(t *testing.T, s string, c byte, from int) {
		if from < 0 {
			from = 0
		}
		if from > len(s) {
			from = len(s)
		}
		x := buildFragmented(s, 5)

		want := -1
		for i := from; i < len(s); i++ {
			if s[i] == c {
				want = i
				break
			}
		}
		if got := x.IndexOfByte(c, from); got != want {
			t.Errorf("IndexOfByte(%q, %d) = %d, want %d", c, from, got, want)
		}

		want = -1
		for i := from - 1; i >= 0; i-- {
			if s[i] == c {
				want = i
				break
			}
		}
		if got := x.LastIndexOfByte(c, from); got != want {
			t.Errorf("LastIndexOfByte(%q, %d) = %d, want %d", c, from, got, want)
		}
	})
}
