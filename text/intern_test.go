package text

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestByteCache(t *testing.T) {
	a := Byte('a')
	if a.Len() != 1 || a.At(0) != 'a' {
		t.Fatalf("Byte('a') = %q", a.String())
	}
	if Byte('a').n != a.n {
		t.Error("ASCII bytes should share cached instances")
	}
	high := Byte(200)
	if high.Len() != 1 || high.At(0) != 200 {
		t.Errorf("Byte(200) = %v", high.Bytes())
	}
}

func TestIntern(t *testing.T) {
	a := Intern("intern-me")
	b := Intern("intern-me")
	if a.n != b.n {
		t.Error("equal content interned to distinct instances")
	}
	if a.String() != "intern-me" {
		t.Errorf("interned content = %q", a.String())
	}
	if c := Intern("intern-other"); c.n == a.n {
		t.Error("distinct content interned to the same instance")
	}
	if !Intern("").IsEmpty() {
		t.Error("interning empty content should return the empty text")
	}
}

func TestInternText(t *testing.T) {
	// A fragmented text and a plain string with the same content must
	// yield the same canonical instance.
	frag := buildFragmented("canonical-content", 3)
	if frag.Intern().n != Intern("canonical-content").n {
		t.Error("interning is not representation independent")
	}
}

// TestInternConcurrent hammers first-time interning of the same contents
// from many goroutines: exactly one canonical instance per content may
// survive.
func TestInternConcurrent(t *testing.T) {
	const goroutines = 8
	const contents = 200

	results := make([][]Text, goroutines)
	var g errgroup.Group
	for n := 0; n < goroutines; n++ {
		g.Go(func() error {
			got := make([]Text, contents)
			for i := 0; i < contents; i++ {
				got[i] = Intern(fmt.Sprintf("concurrent-%d-%s", i, strings.Repeat("x", i%40)))
			}
			results[n] = got
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for n := 1; n < goroutines; n++ {
		for i := range results[0] {
			if results[n][i].n != results[0][i].n {
				t.Fatalf("goroutine %d holds a non-canonical instance for content %d", n, i)
			}
		}
	}
}
