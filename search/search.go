// Package search implements the S component: brute-force subset search
// over a graph's vertex set, enumerating candidates in nondecreasing
// cardinality via bitset.NextSubset (spec.md §4.3, §9's Gosper's-hack
// redesign note) rather than recursive combinations as
// original_source/graphcalc/zero_forcing.py does with itertools.
//
// MinimumSet targets small graphs only (n ≲ 25, spec.md §4.3); callers
// choose a lower bound to skip cardinalities known to be infeasible.
package search

import (
	"errors"

	"github.com/RandyRDavila/GraphCalc/bitset"
	"github.com/RandyRDavila/GraphCalc/core"
)

// ErrNoWitness is returned when no subset of any cardinality from
// lowerBound through n satisfies the predicate.
var ErrNoWitness = errors.New("search: no witness subset exists")

// Predicate reports whether candidate S (as a bitset over g's dense
// vertex index) satisfies the property being searched for.
type Predicate func(g *core.Graph, s *bitset.Set) bool

// MinimumSet returns a smallest vertex subset S for which predicate(g, S)
// holds, searching cardinalities from lowerBound up to g.Order(). Subsets
// of a given cardinality are enumerated in Gosper's-hack order: increasing
// value of the index mask, which is colexicographic (not lexicographic)
// order over ascending-index combinations.
//
// Returns ErrNoWitness if predicate never holds at any cardinality.
func MinimumSet(g *core.Graph, predicate Predicate, lowerBound int) (*bitset.Set, error) {
	n := g.Order()
	if lowerBound < 0 {
		lowerBound = 0
	}
	for size := lowerBound; size <= n; size++ {
		if size == 0 {
			candidate := bitset.New(n)
			if predicate(g, candidate) {
				return candidate, nil
			}
			continue
		}
		mask := bitset.FirstSubset(size)
		for {
			candidate := bitset.FromMask(n, mask)
			if predicate(g, candidate) {
				return candidate, nil
			}
			next, ok := bitset.NextSubset(mask, n)
			if !ok {
				break
			}
			mask = next
		}
	}
	return nil, ErrNoWitness
}
