package forcing

import (
	"github.com/RandyRDavila/GraphCalc/bitset"
	"github.com/RandyRDavila/GraphCalc/core"
)

// adjacency is a dense-index neighbor-list snapshot of g, built once per
// Close call so rounds never recompute neighborhoods from a *core.Graph
// (spec.md §5's "must not recompute neighborhoods from scratch per
// predicate call" applies most directly to search, but the same
// discipline pays off here across rounds of the same call).
type adjacency [][]int

func buildAdjacency(g *core.Graph) adjacency {
	n := g.Order()
	adj := make(adjacency, n)
	for i := 0; i < n; i++ {
		nbrs, _ := g.Neighbors(g.VertexAt(i))
		idxs := make([]int, len(nbrs))
		for j, nb := range nbrs {
			idx, _ := g.Index(nb)
			idxs[j] = idx
		}
		adj[i] = idxs
	}
	return adj
}

// Close evaluates rule to its fixed point starting from seed, returning
// the derived set B* (spec.md §4.2). seed and the returned set are
// bitset.Set values over g's dense vertex index (see core.Graph.Index).
//
// Close never mutates seed; it returns a fresh bitset.Set.
func Close(g *core.Graph, seed *bitset.Set, rule Rule, k int) (*bitset.Set, error) {
	if rule == KForcing || rule == PowerDomination {
		if err := ValidateK(k); err != nil {
			return nil, err
		}
	}
	adj := buildAdjacency(g)
	colored := seed.Clone()

	if rule == PowerDomination {
		closedNeighborhood(colored, adj)
	}

	for {
		var forced []int
		switch rule {
		case PSD:
			forced = psdRound(colored, adj)
		default: // KForcing and the k-forcing phase of PowerDomination
			forced = kForcingRound(colored, adj, k)
		}
		if len(forced) == 0 {
			break
		}
		for _, v := range forced {
			colored.Set(v)
		}
	}
	return colored, nil
}

// closedNeighborhood replaces colored with N[colored] in place.
func closedNeighborhood(colored *bitset.Set, adj adjacency) {
	for _, v := range colored.Slice() {
		for _, u := range adj[v] {
			colored.Set(u)
		}
	}
}

// kForcingRound returns the vertices forced this round under rule (R1):
// every colored v with 1 ≤ |N(v) ∩ white| ≤ k forces all of N(v) ∩ white.
// All active vertices are evaluated against the start-of-round colored
// set, so the result does not depend on evaluation order within the round
// (spec.md §4.2's tie-breaking guarantee).
func kForcingRound(colored *bitset.Set, adj adjacency, k int) []int {
	var forced []int
	seen := make(map[int]bool)
	for _, v := range colored.Slice() {
		white := make([]int, 0, len(adj[v]))
		for _, u := range adj[v] {
			if !colored.Test(u) {
				white = append(white, u)
			}
		}
		if len(white) >= 1 && len(white) <= k {
			for _, u := range white {
				if !seen[u] {
					seen[u] = true
					forced = append(forced, u)
				}
			}
		}
	}
	return forced
}

// psdRound returns the vertices forced this round under rule (R2): for
// each connected component of the white-induced subgraph, any colored
// vertex with exactly one white neighbor in that component forces it.
func psdRound(colored *bitset.Set, adj adjacency) []int {
	n := colored.Len()
	visited := make([]bool, n)
	var forced []int
	seen := make(map[int]bool)

	for i := 0; i < n; i++ {
		if colored.Test(i) || visited[i] {
			continue
		}
		component := bfsComponent(i, adj, colored, visited)
		compSet := make(map[int]bool, len(component))
		for _, v := range component {
			compSet[v] = true
		}
		for _, v := range colored.Slice() {
			var whiteNbr, count int
			for _, u := range adj[v] {
				if compSet[u] {
					count++
					whiteNbr = u
				}
			}
			if count == 1 && !seen[whiteNbr] {
				seen[whiteNbr] = true
				forced = append(forced, whiteNbr)
			}
		}
	}
	return forced
}

// bfsComponent explores the white-induced component containing root,
// marking every visited white vertex so the caller does not revisit it
// for a different root in the same round.
func bfsComponent(root int, adj adjacency, colored *bitset.Set, visited []bool) []int {
	queue := []int{root}
	visited[root] = true
	var comp []int
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		comp = append(comp, v)
		for _, u := range adj[v] {
			if !colored.Test(u) && !visited[u] {
				visited[u] = true
				queue = append(queue, u)
			}
		}
	}
	return comp
}

// IsForcingSet reports whether close(g, seed, rule) reaches every vertex.
func IsForcingSet(g *core.Graph, seed *bitset.Set, rule Rule, k int) (bool, error) {
	closed, err := Close(g, seed, rule, k)
	if err != nil {
		return false, err
	}
	return closed.Count() == g.Order(), nil
}
