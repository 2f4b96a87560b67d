// Package text provides an immutable rope: string-like values whose concat,
// substring, insert, and delete operations run in O(log n) time and share
// structure instead of copying.
//
// A Text is a binary tree. Leaves hold the actual bytes, either as small
// owned blocks or as views over a wrapped Go string; interior nodes hold a
// head and a tail child. Concatenation keeps the tree approximately
// weight-balanced: whenever one side grows past twice the other, a single
// rotation promotes the larger side's near child, bounding depth at O(log n)
// without ever rebalancing globally.
//
// All positions are byte offsets into the UTF-8 encoding, following the
// usual Go convention. Offsets that split a multi-byte rune are not
// rejected; the bytes are carried faithfully, but rune-level operations such
// as case conversion assume leaf boundaries fall between runes.
//
// Text values are immutable after construction, so they may be shared
// freely across goroutines with no synchronization.
//
//	greeting := text.New("Hello, ").Concat(text.New("World!"))
//	greeting.Sub(7, 12).String() // "World"
//
// Intern returns a canonical long-lived instance per distinct content,
// useful for symbol-like strings compared by identity.
package text
