package replacement_test

import (
	replacement "github.com/djdv/go-replacement"
)

// cacheSim is a minimal set-associative cache controller that
// drives a [replacement.Policy] through the full access sequence:
// lookup, fill-invalid-first, victim on conflict, then touch.
// It stands in for the external cache store the library serves.
type cacheSim struct {
	policy replacement.Policy
	lines  [][]replacement.Line
}

func newCacheSim(policy replacement.Policy, sets, ways int) *cacheSim {
	lines := make([][]replacement.Line, sets)
	for set := range lines {
		lines[set] = make([]replacement.Line, ways)
	}
	return &cacheSim{
		policy: policy,
		lines:  lines,
	}
}

// Access simulates a read of block; true on hit.
func (c *cacheSim) Access(block int) bool {
	return c.access(uint64(block), replacement.StatusExclusive)
}

// Write simulates a store to block; true on hit.
// The line ends up modified either way.
func (c *cacheSim) Write(block int) bool {
	return c.access(uint64(block), replacement.StatusModified)
}

func (c *cacheSim) access(block uint64, fill replacement.Status) bool {
	var (
		sets  = uint64(len(c.lines))
		set   = int(block % sets)
		tag   = block / sets
		lines = c.lines[set]
	)
	for way, line := range lines {
		if line.Status == replacement.StatusInvalid ||
			line.Tag != tag {
			continue
		}
		if fill == replacement.StatusModified {
			lines[way].Status = fill
		}
		c.policy.Touch(set, tag, lines)
		return true
	}
	way := invalidWay(lines)
	if way < 0 {
		way = c.policy.Victim(set, lines)
	}
	lines[way] = replacement.Line{Tag: tag, Status: fill}
	c.policy.Touch(set, tag, lines)
	return false
}

// resident reports whether block currently occupies a line.
func (c *cacheSim) resident(block int) bool {
	var (
		sets = uint64(len(c.lines))
		set  = uint64(block) % sets
		tag  = uint64(block) / sets
	)
	for _, line := range c.lines[set] {
		if line.Status != replacement.StatusInvalid &&
			line.Tag == tag {
			return true
		}
	}
	return false
}

func invalidWay(lines []replacement.Line) int {
	for way, line := range lines {
		if line.Status == replacement.StatusInvalid {
			return way
		}
	}
	return -1
}
