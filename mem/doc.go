// Package mem provides the two allocation collaborators the fastcoll
// structures are written against: a recycling Factory and a long-lived
// allocation Region.
//
// Factory is an acquire/release free-list. Structures that churn through
// small nodes (map entries, iterators, rope leaves) obtain them from a
// Factory instead of allocating directly, so a surrounding pool can
// intercept and recycle them:
//
//	var entries = mem.NewFactory(
//		func() *node { return new(node) },
//		func(n *node) { *n = node{} },
//	)
//	n := entries.Acquire()
//	// ...
//	entries.Release(n)
//
// Region attributes allocation-heavy blocks of work to a named long-lived
// scope. Under a garbage collector the attribution is advisory — nothing is
// pinned — but growth paths route through Region.Run so the intent (this
// structure outlives the allocating goroutine's transient working set) is
// explicit and the per-region counters remain observable. The package-level
// Immortal region has process lifetime and is never torn down; interned
// values live there.
package mem
