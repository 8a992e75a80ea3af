// Package degseq computes the D component: invariants derivable from a
// graph's degree sequence alone, without touching adjacency structure
// beyond the degrees themselves (spec.md §4.5).
package degseq

import (
	"sort"

	"github.com/RandyRDavila/GraphCalc/core"
)

func descending(g *core.Graph) []int {
	d := g.DegreeSequence()
	out := make([]int, len(d))
	copy(out, d)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func ascending(g *core.Graph) []int {
	d := g.DegreeSequence()
	out := make([]int, len(d))
	copy(out, d)
	sort.Ints(out)
	return out
}

// SubKDomination returns the smallest t such that
// t + (1/k)·Σ_{i=1}^{t} d_i ≥ n, where d is sorted descending. Fails with
// ErrBadParameter if k < 1.
func SubKDomination(g *core.Graph, k int) (int, error) {
	if err := validateK(k); err != nil {
		return 0, err
	}
	d := descending(g)
	n := len(d)
	sum := 0.0
	for t := 1; t <= n; t++ {
		sum += float64(d[t-1])
		if float64(t)+sum/float64(k) >= float64(n) {
			return t, nil
		}
	}
	return n, nil
}

// Slater is SubKDomination with k = 1.
func Slater(g *core.Graph) int {
	t, _ := SubKDomination(g, 1)
	return t
}

// SubTotalDomination returns the smallest t such that Σ_{i=1}^{t} d_i ≥ n,
// d sorted descending.
func SubTotalDomination(g *core.Graph) int {
	d := descending(g)
	n := len(d)
	sum := 0
	for t := 1; t <= n; t++ {
		sum += d[t-1]
		if sum >= n {
			return t
		}
	}
	return n
}

// Annihilation returns the largest t such that Σ_{i=1}^{t} d_i ≤ m, d
// sorted ascending, m = |E(G)|.
func Annihilation(g *core.Graph) int {
	d := ascending(g)
	m := g.Size()
	sum := 0
	best := 0
	for t := 1; t <= len(d); t++ {
		sum += d[t-1]
		if sum <= m {
			best = t
		} else {
			break
		}
	}
	return best
}

// Residue runs the Havel–Hakimi process on g's degree sequence and
// returns the length of the final all-zero sequence: repeatedly remove
// the current maximum degree d*, decrement the next d* entries by one,
// and re-sort descending, until the maximum degree is 0.
func Residue(g *core.Graph) int {
	seq := descending(g)
	for len(seq) > 0 && seq[0] > 0 {
		d := seq[0]
		rest := seq[1:]
		for i := 0; i < d && i < len(rest); i++ {
			rest[i]--
		}
		sort.Sort(sort.Reverse(sort.IntSlice(rest)))
		seq = rest
	}
	return len(seq)
}

// HarmonicIndex returns Σ_{{u,v} ∈ E} 2/(d(u) + d(v)) in IEEE-754 double
// precision. Isolated vertices contribute nothing — only edges do.
func HarmonicIndex(g *core.Graph) float64 {
	total := 0.0
	for _, e := range g.Edges() {
		du, _ := g.Degree(e.U)
		dv, _ := g.Degree(e.V)
		total += 2.0 / float64(du+dv)
	}
	return total
}
