// Package order is a specialized recency table for set-associative
// replacement policies.
package order

import "iter"

// A Table holds one recency sequence per cache set.
// Each sequence is a permutation of the way indices `[0,ways)`,
// ordered from most- to least-recently used.
// Sequences start in identity order and are only ever
// repositioned in place; entries are never created or destroyed.
type Table struct {
	slots []int
	ways  int
}

// New creates a Table of sets×ways entries,
// each set in identity order `[0,1,2,...]`.
// Both dimensions must be positive.
func New(sets, ways int) *Table {
	if sets <= 0 || ways <= 0 {
		return nil
	}
	slots := make([]int, sets*ways)
	for i := range slots {
		slots[i] = i % ways
	}
	return &Table{
		slots: slots,
		ways:  ways,
	}
}

// Sets returns the number of per-set sequences held by the table.
func (t *Table) Sets() int {
	return len(t.slots) / t.ways
}

// Ways returns the length of each per-set sequence.
func (t *Table) Ways() int {
	return t.ways
}

// Valid reports whether set is within the table's bounds.
func (t *Table) Valid(set int) bool {
	return set >= 0 && set < t.Sets()
}

// sequence returns the live subslice for set.
// Caller must validate set.
func (t *Table) sequence(set int) []int {
	start := set * t.ways
	return t.slots[start : start+t.ways]
}

// MoveToFront relocates way to the most-recently-used position
// of set's sequence, shifting the entries that preceded it one
// step toward the tail. The relative order of all other entries
// is preserved. Unknown ways and out-of-range sets are ignored.
func (t *Table) MoveToFront(set, way int) {
	if !t.Valid(set) {
		return
	}
	var (
		sequence = t.sequence(set)
		position = -1
	)
	for i, slot := range sequence {
		if slot == way {
			position = i
			break
		}
	}
	if position < 0 {
		return
	}
	for i := position; i > 0; i-- {
		sequence[i] = sequence[i-1]
	}
	sequence[0] = way
}

// Tail returns the least-recently-used way of set.
// Set must be within bounds.
func (t *Table) Tail(set int) int {
	return t.sequence(set)[t.ways-1]
}

// TailToHead returns an iterator over set's ways from
// least- to most-recently used. Set must be within bounds.
func (t *Table) TailToHead(set int) iter.Seq[int] {
	sequence := t.sequence(set)
	return func(yield func(int) bool) {
		for i := len(sequence) - 1; i >= 0; i-- {
			if !yield(sequence[i]) {
				return
			}
		}
	}
}

// Order returns a copy of set's sequence from most- to
// least-recently used. Set must be within bounds.
func (t *Table) Order(set int) []int {
	sequence := t.sequence(set)
	order := make([]int, len(sequence))
	copy(order, sequence)
	return order
}
