package replacement

// LRU is the strict least-recently-used policy.
// Pure recency governs both tracking and eviction;
// coherence status is never consulted.
type LRU struct {
	recency
}

// NewLRU creates an [LRU] policy for a cache of
// sets×ways lines, every set starting in identity order.
func NewLRU(sets, ways int) (*LRU, error) {
	recency, err := newRecency(sets, ways)
	if err != nil {
		return nil, err
	}
	return &LRU{recency: recency}, nil
}

// Victim returns the least-recently-used way of set.
// Lines is ignored. O(1).
func (p *LRU) Victim(set int, _ []Line) int {
	return p.table.Tail(set)
}
