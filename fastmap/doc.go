// Package fastmap provides a hash map with strict insertion-order iteration
// and block-incremental growth.
//
// Buckets live in a two-level array of fixed 64-slot blocks. When the map
// outgrows its bucket array a new array eight times larger is installed, and
// the previous one stays reachable behind it as a fallback: existing entries
// are never rehashed or moved, lookups simply consult the newest array first
// and fall back through older ones. Clear discards the whole fallback chain.
//
// Every entry is also linked on a doubly-linked chain between two sentinels,
// so iteration yields keys in the exact order first inserted, independent of
// hash layout. Replacing the value of an existing key never changes its
// position.
//
// Hashing and equality are delegated to a compare.Strategy:
//
//	m := fastmap.New[string, int](compare.Natural[string]())
//	m.Put("one", 1)
//	for k, v := range m.All() { ... }
//
// By default a map is unsynchronized. A map built with Shared switches to a
// concurrent-read, serialized-write discipline: gets and iteration over
// published entries are lock-free, while insertion of a new key and removal
// take the map's mutex and repeat the lookup under it.
package fastmap
