package text

import (
	"sync"

	"github.com/dshills/fastcoll/compare"
	"github.com/dshills/fastcoll/fastmap"
	"github.com/dshills/fastcoll/mem"
)

// ascii caches single-byte texts for the 7-bit range, the overwhelmingly
// common padding and separator characters.
var ascii [128]Text

func init() {
	mem.Immortal.Run(func() {
		for i := range ascii {
			ascii[i] = Text{&primitive{b: []byte{byte(i)}}}
		}
	})
}

// Byte returns a one-byte text holding c. ASCII values share cached
// instances.
func Byte(c byte) Text {
	if c < 128 {
		return ascii[c]
	}
	return Text{&primitive{b: []byte{c}}}
}

// The intern table is keyed by content: canonical texts key themselves,
// lookups probe with a zero-copy string adapter. The map is shared so the
// hit path takes no lock; misses double-check under internMu so at most one
// canonical instance exists per distinct content.
var (
	internMu sync.Mutex
	interned = fastmap.New[compare.Sequence, Text](
		compare.Lexical(),
		fastmap.Shared[compare.Sequence, Text](),
		fastmap.WithRegion[compare.Sequence, Text](mem.Immortal),
	)
)

// Intern returns the canonical Text for the content of s. The canonical
// instance is retained for the life of the process and is flattened into
// owned storage, so callers may intern views over large transient strings
// without pinning them.
func Intern(s string) Text {
	if len(s) == 0 {
		return Text{}
	}
	if t, ok := interned.Get(compare.Str(s)); ok {
		return t
	}
	internMu.Lock()
	defer internMu.Unlock()
	if t, ok := interned.Get(compare.Str(s)); ok {
		return t
	}
	var t Text
	mem.Immortal.Run(func() {
		t = FromBytes([]byte(s))
	})
	interned.Put(t, t)
	return t
}

// Intern returns the canonical Text equal in content to t.
func (t Text) Intern() Text {
	if t.n == nil {
		return Text{}
	}
	return Intern(t.String())
}

// InternedCount returns the number of canonical texts currently retained.
func InternedCount() int { return interned.Size() }
