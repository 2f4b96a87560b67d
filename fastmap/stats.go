package fastmap

// Stats is a point-in-time snapshot of a map's internal layout, intended for
// capacity tuning. Collecting it walks every bucket generation.
type Stats struct {
	Size        int // entries currently mapped
	Capacity    int // bucket cells in the newest generation
	Generations int // bucket arrays on the fallback chain, newest included
	Occupied    int // non-empty bucket cells across all generations
	MaxChain    int // longest bucket collision chain
	FreeEntries int // recycled entries parked for reuse
}

// Stats collects a snapshot. In shared maps the snapshot is consistent only
// if taken while no writer is active.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{Size: m.Size()}
	for t := m.table.Load(); t != nil; t = t.old {
		if s.Generations == 0 {
			s.Capacity = len(t.blocks) << innerBits
		}
		s.Generations++
		for _, blk := range t.blocks {
			for i := range blk {
				e := blk[i].Load()
				if e == nil {
					continue
				}
				s.Occupied++
				n := 0
				for ; e != nil; e = e.next.Load() {
					n++
				}
				if n > s.MaxChain {
					s.MaxChain = n
				}
			}
		}
	}
	for e := m.tail.after.Load(); e != nil; e = e.after.Load() {
		s.FreeEntries++
	}
	return s
}
