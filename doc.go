// Package replacement implements the eviction [Policy] variants of a
// set-associative cache simulator.
//
// The cache store, hit detection, and memory hierarchy live outside this
// package; a cache controller consults a policy at two points of each
// simulated access. On a miss that needs room it asks for a victim way,
// and after every hit or fill it records the access so recency state
// tracks the set's occupancy. Lines are handed in per call as a read-only
// view; the policy never mutates them.
//
// Glossary and invariants:
//
//   - Set
//
//     A fixed group of `ways` lines a memory block maps into.
//     Policies address lines by their way index within the set.
//
//   - Recency order
//
//     Per-set permutation of `[0,ways)` from most- to least-recently
//     used. Always a permutation: entries are repositioned, never
//     created or destroyed.
//
//   - Move-to-front
//
//     The recency update: the accessed way moves to position 0 and the
//     entries that preceded it shift one step toward the tail, keeping
//     the relative order of everything else.
//
//   - Clean
//
//     A line in the exclusive coherence state. It can be reclaimed
//     without a write-back; every other non-invalid state is treated
//     as (potentially) dirty.
//
// Variants:
//
//   - [LRU]
//
//     Victim is the recency-order tail. Status is never consulted.
//
//   - [PreferClean]
//
//     Same tracking as [LRU]; the victim scan walks tail→head and takes
//     the first clean line, falling back to the tail when none is clean.
//     Cleanliness strictly dominates recency.
//
//   - [Random]
//
//     No tracking state. Victims are drawn uniformly from an owned
//     source seeded once at construction; seeded construction makes
//     simulation runs reproducible.
//
// Contract notes:
//
//   - Touch with a tag that has no non-invalid match in the set is a
//     silent no-op. A caller bookkeeping slip skips one update instead
//     of aborting the whole simulation; the `replacement_debug` build
//     tag turns these into assertions.
//
//   - Policies are not safe for concurrent use. One simulated access is
//     fully processed before the next; callers driving a policy from
//     multiple goroutines must serialize externally.
package replacement
