// Package compare provides pluggable hash/equality/order strategies for the
// fastcoll collections.
//
// A Strategy bundles the three operations a hashed or sorted collection needs
// from its element type: a hash function, an equivalence relation consistent
// with that hash, and (optionally) a total order. Collections take a Strategy
// at construction time, so the same map or table type can behave as an
// identity map, a case-exact string map, or a rehashing map for keys with
// poorly distributed hashes.
//
// The built-in strategies form a small closed set:
//
//	Natural[T]   hash, ==, and cmp.Compare for ordered primitives
//	Direct[T]    hash and == for any comparable type (unordered)
//	Rehash       wraps another strategy, spreading clustered hash bits
//	Identity[T]  pointer identity for *T keys
//	Lexical      content hash/equality/order over any Sequence
//	Func         ad-hoc strategy from closures
//
// Lexical operates on the Sequence interface rather than on string, so a
// plain string (wrapped in Str) and a rope-backed text.Text with the same
// content hash to the same bucket and compare equal. This is what lets a map
// be keyed by content, not by representation.
package compare
