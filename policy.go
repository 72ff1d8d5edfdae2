package replacement

import "github.com/djdv/go-replacement/internal/order"

type (
	// Status is the coherence state of a cache line,
	// as reported by the owning cache store.
	Status uint8

	// A Line is the read-only view of one cache line,
	// supplied by the caller on each access. The policy
	// never mutates lines; it only inspects them.
	Line struct {
		Tag    uint64
		Status Status
	}

	// A Policy decides which way of a set to reclaim on a miss
	// and tracks per-set access recency where the variant needs it.
	// Concurrent access must be guarded by the caller.
	// Constructed by [NewLRU], [NewPreferClean], [NewRandom],
	// or [NewRandomSeeded].
	Policy interface {
		// Victim returns the way in `[0,ways)` to evict from set.
		// Lines is the set's current line view; it is not modified.
		// Callable only when the caller is about to evict,
		// before any line data is overwritten.
		Victim(set int, lines []Line) int
		// Touch records an access to the non-invalid line of set
		// whose tag matches. Call once per hit, and once per fill
		// immediately after the line's tag and status reflect the
		// new occupant. A tag with no non-invalid match is ignored.
		Touch(set int, tag uint64, lines []Line)
		// Release drops the policy's owned state.
		// The policy must not be used afterwards.
		Release()
	}
)

// Coherence states distinguished by this library.
// Only [StatusExclusive] counts as clean; everything
// non-invalid either holds or may hold dirty data.
const (
	StatusInvalid Status = iota
	StatusShared
	StatusExclusive
	StatusModified
)

// Clean reports whether a line in this state can be
// evicted without a write-back.
func (s Status) Clean() bool {
	return s == StatusExclusive
}

// recency is the tracking state shared by the LRU-family policies:
// one MRU→LRU permutation of way indices per set, updated by
// move-to-front on every recorded access.
type recency struct {
	table *order.Table
}

func newRecency(sets, ways int) (recency, error) {
	if err := validGeometry(sets, ways); err != nil {
		return recency{}, err
	}
	return recency{table: order.New(sets, ways)}, nil
}

// Touch implements the access-recording half of [Policy]:
// resolve tag to a way within set, then move that way to the
// most-recently-used position. Unresolvable tags are a no-op
// so a caller-side bookkeeping slip cannot corrupt other sets.
func (r *recency) Touch(set int, tag uint64, lines []Line) {
	if !r.table.Valid(set) {
		return
	}
	way := findWay(lines, tag)
	if way < 0 {
		if debugging {
			assert(false, "touch with a tag absent from the set")
		}
		return
	}
	r.table.MoveToFront(set, way)
}

// Release drops the recency tables.
func (r *recency) Release() {
	r.table = nil
}

// Sets returns the number of sets tracked by the policy.
func (r *recency) Sets() int { return r.table.Sets() }

// Ways returns the associativity tracked by the policy.
func (r *recency) Ways() int { return r.table.Ways() }

// findWay returns the index within lines of the unique
// non-invalid line holding tag, or -1. Invalid lines never
// match; their tag field is meaningless.
func findWay(lines []Line, tag uint64) int {
	for way, line := range lines {
		if line.Status != StatusInvalid &&
			line.Tag == tag {
			return way
		}
	}
	return -1
}

func validGeometry(sets, ways int) error {
	if sets < minimumSets ||
		ways < minimumWays {
		return geometryError(sets, ways)
	}
	return nil
}
