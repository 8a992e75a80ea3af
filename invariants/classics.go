// Package invariants is the public API: one function per graph invariant,
// wiring core, forcing, search, ilp, and degseq together exactly as
// spec.md §4 lays out the G→{C,D}→S→I dependency chain.
package invariants

import (
	"github.com/RandyRDavila/GraphCalc/core"
	"github.com/RandyRDavila/GraphCalc/ilp"
)

// MaximumIndependentSet solves spec.md §4.4's independent-set LP: maximize
// Σx_v subject to x_u + x_v ≤ 1 for every edge {u,v}.
func MaximumIndependentSet(g *core.Graph, opts ...ilp.SolveOption) ([]string, error) {
	n := g.Order()
	m := ilp.NewModel(n, ilp.Maximize)
	for v := 0; v < n; v++ {
		m.SetObjectiveCoeff(v, 1)
	}
	for _, e := range g.Edges() {
		ui, _ := g.Index(e.U)
		vi, _ := g.Index(e.V)
		m.AddLessEqual(map[int]float64{ui: 1, vi: 1}, 1)
	}
	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return nil, err
	}
	return selectedVertices(g, res.X), nil
}

// IndependenceNumber is α(G) = |maximum independent set|.
func IndependenceNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	s, err := MaximumIndependentSet(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// MaximumClique returns a maximum clique of g, solved as a maximum
// independent set of the complement (spec.md §4.4: "Clique = independent
// set in the complement").
func MaximumClique(g *core.Graph, opts ...ilp.SolveOption) ([]string, error) {
	return MaximumIndependentSet(g.Complement(), opts...)
}

// CliqueNumber is ω(G).
func CliqueNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	s, err := MaximumClique(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// MinimumVertexCover returns V minus a maximum independent set (spec.md
// §4.4: "Vertex cover = V ∖ (maximum independent set)").
func MinimumVertexCover(g *core.Graph, opts ...ilp.SolveOption) ([]string, error) {
	ind, err := MaximumIndependentSet(g, opts...)
	if err != nil {
		return nil, err
	}
	inInd := make(map[string]bool, len(ind))
	for _, v := range ind {
		inInd[v] = true
	}
	var cover []string
	for _, v := range g.Vertices() {
		if !inInd[v] {
			cover = append(cover, v)
		}
	}
	return cover, nil
}

// VertexCoverNumber is n − α(G).
func VertexCoverNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	alpha, err := IndependenceNumber(g, opts...)
	if err != nil {
		return 0, err
	}
	return g.Order() - alpha, nil
}

// ChromaticNumber solves spec.md §4.4's assignment-based coloring LP and
// returns the number of colors used in an optimal proper coloring.
func ChromaticNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	n := g.Order()
	if n == 0 {
		return 0, nil
	}
	// Variables: c_0..c_{n-1} (color i used), then y_{v,i} for v,i in
	// [0,n): y index = n + v*n + i.
	numVars := n + n*n
	m := ilp.NewModel(numVars, ilp.Minimize)
	yIdx := func(v, i int) int { return n + v*n + i }

	for i := 0; i < n; i++ {
		m.SetObjectiveCoeff(i, 1)
	}
	for v := 0; v < n; v++ {
		coeffs := make(map[int]float64, n)
		for i := 0; i < n; i++ {
			coeffs[yIdx(v, i)] = 1
		}
		m.AddEquality(coeffs, 1)
	}
	for _, e := range g.Edges() {
		ui, _ := g.Index(e.U)
		vi, _ := g.Index(e.V)
		for i := 0; i < n; i++ {
			m.AddLessEqual(map[int]float64{yIdx(ui, i): 1, yIdx(vi, i): 1}, 1)
		}
	}
	for v := 0; v < n; v++ {
		for i := 0; i < n; i++ {
			m.AddLessEqual(map[int]float64{yIdx(v, i): 1, i: -1}, 0)
		}
	}

	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return 0, err
	}
	count := 0
	for i := 0; i < n; i++ {
		if res.X[i] {
			count++
		}
	}
	return count, nil
}

// MaximumMatching solves spec.md §4.4's matching LP: maximize Σx_e
// subject to Σ_{e∋v} x_e ≤ 1 for each v.
func MaximumMatching(g *core.Graph, opts ...ilp.SolveOption) ([]core.Edge, error) {
	edges := g.Edges()
	m := ilp.NewModel(len(edges), ilp.Maximize)
	for i := range edges {
		m.SetObjectiveCoeff(i, 1)
	}
	for _, v := range g.Vertices() {
		coeffs := map[int]float64{}
		for i, e := range edges {
			if e.U == v || e.V == v {
				coeffs[i] = 1
			}
		}
		if len(coeffs) > 0 {
			m.AddLessEqual(coeffs, 1)
		}
	}
	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return nil, err
	}
	var matching []core.Edge
	for i, chosen := range res.X {
		if chosen {
			matching = append(matching, edges[i])
		}
	}
	return matching, nil
}

// MatchingNumber is μ(G).
func MatchingNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	m, err := MaximumMatching(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(m), nil
}

// MinimumEdgeCover returns the smallest edge set incident to every vertex,
// via the Gallai identity ρ(G) = n − μ(G) rather than a separate
// blossom-based algorithm (spec.md §9 design note): any maximum matching
// can be extended to a minimum edge cover by adding, for each unmatched
// vertex, one incident edge to an arbitrary matched partner. Fails with
// ilp.Infeasible if g has an isolated vertex, since no edge set can cover
// one.
func MinimumEdgeCover(g *core.Graph, opts ...ilp.SolveOption) ([]core.Edge, error) {
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 0 {
			return nil, ilp.Infeasible
		}
	}
	matching, err := MaximumMatching(g, opts...)
	if err != nil {
		return nil, err
	}
	matched := make(map[string]bool, 2*len(matching))
	for _, e := range matching {
		matched[e.U] = true
		matched[e.V] = true
	}
	cover := append([]core.Edge(nil), matching...)
	for _, v := range g.Vertices() {
		if matched[v] {
			continue
		}
		nbrs, _ := g.Neighbors(v)
		u := nbrs[0]
		if v < u {
			cover = append(cover, core.Edge{U: v, V: u})
		} else {
			cover = append(cover, core.Edge{U: u, V: v})
		}
		matched[v] = true
	}
	return cover, nil
}

// EdgeCoverNumber is ρ(G) = n − μ(G) (Gallai identity).
func EdgeCoverNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	cover, err := MinimumEdgeCover(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(cover), nil
}

// MinMaximalMatchingNumber equals the domination number of the line graph
// L(G) (spec.md §4.4).
func MinMaximalMatchingNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	return DominationNumber(g.LineGraph(), opts...)
}

func selectedVertices(g *core.Graph, x []bool) []string {
	var out []string
	for i, chosen := range x {
		if chosen {
			out = append(out, g.VertexAt(i))
		}
	}
	return out
}
