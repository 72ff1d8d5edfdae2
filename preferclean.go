package replacement

// PreferClean is the coherence-aware variant of [LRU]:
// access tracking is identical, but eviction favors lines
// that can be reclaimed without a write-back. Cleanliness
// strictly dominates recency in the tie-break — any clean
// line anywhere in recency order wins over a dirty line at
// the true tail.
type PreferClean struct {
	recency
}

// NewPreferClean creates a [PreferClean] policy for a cache
// of sets×ways lines, every set starting in identity order.
func NewPreferClean(sets, ways int) (*PreferClean, error) {
	recency, err := newRecency(sets, ways)
	if err != nil {
		return nil, err
	}
	return &PreferClean{recency: recency}, nil
}

// Victim scans set's recency order from least- toward
// most-recently used and returns the first way whose line
// is exclusive/clean. If no line is clean, it falls back to
// the true LRU tail. Worst case O(ways).
func (p *PreferClean) Victim(set int, lines []Line) int {
	for way := range p.table.TailToHead(set) {
		if way < len(lines) &&
			lines[way].Status.Clean() {
			return way
		}
	}
	return p.table.Tail(set)
}
