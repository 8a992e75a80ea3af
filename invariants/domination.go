package invariants

import (
	"github.com/RandyRDavila/GraphCalc/bitset"
	"github.com/RandyRDavila/GraphCalc/core"
	"github.com/RandyRDavila/GraphCalc/ilp"
	"github.com/RandyRDavila/GraphCalc/search"
)

func closedNeighborCoeffs(g *core.Graph, v string) map[int]float64 {
	coeffs := map[int]float64{}
	vi, _ := g.Index(v)
	coeffs[vi] = 1
	nbrs, _ := g.Neighbors(v)
	for _, u := range nbrs {
		ui, _ := g.Index(u)
		coeffs[ui] = 1
	}
	return coeffs
}

func openNeighborCoeffs(g *core.Graph, v string) map[int]float64 {
	coeffs := map[int]float64{}
	nbrs, _ := g.Neighbors(v)
	for _, u := range nbrs {
		ui, _ := g.Index(u)
		coeffs[ui] = 1
	}
	return coeffs
}

// MinimumDominatingSet solves spec.md §4.4's base dominating-set LP:
// minimize Σx_v subject to Σ_{u∈N[v]} x_u ≥ 1 for each v.
func MinimumDominatingSet(g *core.Graph, opts ...ilp.SolveOption) ([]string, error) {
	n := g.Order()
	m := ilp.NewModel(n, ilp.Minimize)
	for v := 0; v < n; v++ {
		m.SetObjectiveCoeff(v, 1)
	}
	for _, v := range g.Vertices() {
		m.AddGreaterEqual(closedNeighborCoeffs(g, v), 1)
	}
	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return nil, err
	}
	return selectedVertices(g, res.X), nil
}

// DominationNumber is γ(G).
func DominationNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	s, err := MinimumDominatingSet(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// MinimumTotalDominatingSet is the dominating-set LP using the open
// neighborhood N(v) in place of N[v] (spec.md §4.4).
func MinimumTotalDominatingSet(g *core.Graph, opts ...ilp.SolveOption) ([]string, error) {
	n := g.Order()
	m := ilp.NewModel(n, ilp.Minimize)
	for v := 0; v < n; v++ {
		m.SetObjectiveCoeff(v, 1)
	}
	for _, v := range g.Vertices() {
		m.AddGreaterEqual(openNeighborCoeffs(g, v), 1)
	}
	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return nil, err
	}
	return selectedVertices(g, res.X), nil
}

// TotalDominationNumber is γ_t(G).
func TotalDominationNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	s, err := MinimumTotalDominatingSet(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// MinimumIndependentDominatingSet adds the independent-set edge
// constraints to the dominating-set LP (spec.md §4.4).
func MinimumIndependentDominatingSet(g *core.Graph, opts ...ilp.SolveOption) ([]string, error) {
	n := g.Order()
	m := ilp.NewModel(n, ilp.Minimize)
	for v := 0; v < n; v++ {
		m.SetObjectiveCoeff(v, 1)
	}
	for _, v := range g.Vertices() {
		m.AddGreaterEqual(closedNeighborCoeffs(g, v), 1)
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

// IndependentDominationNumber is i(G).
func IndependentDominationNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	s, err := MinimumIndependentDominatingSet(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// MinimumRestrainedDominatingSet adds, for each v, the restraint
// Σ_{u∈N(v)} (1−x_u) ≥ 1−x_v — every non-chosen vertex keeps a
// non-chosen neighbor (spec.md §4.4).
func MinimumRestrainedDominatingSet(g *core.Graph, opts ...ilp.SolveOption) ([]string, error) {
	n := g.Order()
	m := ilp.NewModel(n, ilp.Minimize)
	for v := 0; v < n; v++ {
		m.SetObjectiveCoeff(v, 1)
	}
	for _, v := range g.Vertices() {
		m.AddGreaterEqual(closedNeighborCoeffs(g, v), 1)
	}
	for _, v := range g.Vertices() {
		vi, _ := g.Index(v)
		nbrs, _ := g.Neighbors(v)
		// Σ_{u∈N(v)} (1−x_u) ≥ 1−x_v  ⟺  x_v − Σ_{u∈N(v)} x_u ≥ 1 − |N(v)|
		coeffs := map[int]float64{vi: 1}
		for _, u := range nbrs {
			ui, _ := g.Index(u)
			coeffs[ui] -= 1
		}
		m.AddGreaterEqual(coeffs, 1-float64(len(nbrs)))
	}
	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return nil, err
	}
	return selectedVertices(g, res.X), nil
}

// RestrainedDominationNumber is γ_r(G).
func RestrainedDominationNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	s, err := MinimumRestrainedDominatingSet(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// OuterConnectedDominatingSet is S-solved, not LP (spec.md §4.4):
// enumeration with the predicate "dominating ∧ induced subgraph on V∖S is
// connected".
func OuterConnectedDominatingSet(g *core.Graph) ([]string, error) {
	s, err := search.MinimumSet(g, search.OuterConnectedDominating, 1)
	if err != nil {
		return nil, err
	}
	return vertexNames(g, s), nil
}

// OuterConnectedDominationNumber is γ_oc(G).
func OuterConnectedDominationNumber(g *core.Graph) (int, error) {
	s, err := OuterConnectedDominatingSet(g)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

func vertexNames(g *core.Graph, s *bitset.Set) []string {
	idxs := s.Slice()
	out := make([]string, len(idxs))
	for i, idx := range idxs {
		out[i] = g.VertexAt(idx)
	}
	return out
}

// RomanDominationNumber solves spec.md §4.4's Roman domination LP:
// variables x_v (assign 1), y_v (assign 2); minimize Σ(x_v+2y_v) subject
// to x_v+y_v+Σ_{u∈N(v)}y_u ≥ 1 and x_v+y_v ≤ 1 for every v.
func RomanDominationNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	n := g.Order()
	m := ilp.NewModel(2*n, ilp.Minimize)
	xIdx := func(v int) int { return v }
	yIdx := func(v int) int { return n + v }
	for v := 0; v < n; v++ {
		m.SetObjectiveCoeff(xIdx(v), 1)
		m.SetObjectiveCoeff(yIdx(v), 2)
	}
	for _, v := range g.Vertices() {
		vi, _ := g.Index(v)
		coeffs := map[int]float64{xIdx(vi): 1, yIdx(vi): 1}
		nbrs, _ := g.Neighbors(v)
		for _, u := range nbrs {
			ui, _ := g.Index(u)
			coeffs[yIdx(ui)] += 1
		}
		m.AddGreaterEqual(coeffs, 1)
		m.AddLessEqual(map[int]float64{xIdx(vi): 1, yIdx(vi): 1}, 1)
	}
	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return 0, err
	}
	return int(round(res.Objective)), nil
}

// DoubleRomanDominationNumber solves spec.md §4.4's double Roman
// domination LP: variables x_v,y_v,z_v (weights 1,2,3); minimize
// Σ(x_v+2y_v+3z_v).
func DoubleRomanDominationNumber(g *core.Graph, opts ...ilp.SolveOption) (int, error) {
	n := g.Order()
	m := ilp.NewModel(3*n, ilp.Minimize)
	xIdx := func(v int) int { return v }
	yIdx := func(v int) int { return n + v }
	zIdx := func(v int) int { return 2*n + v }
	for v := 0; v < n; v++ {
		m.SetObjectiveCoeff(xIdx(v), 1)
		m.SetObjectiveCoeff(yIdx(v), 2)
		m.SetObjectiveCoeff(zIdx(v), 3)
	}
	for _, v := range g.Vertices() {
		vi, _ := g.Index(v)
		nbrs, _ := g.Neighbors(v)

		// (a) x_v+y_v+z_v + ½·Σy_u + Σz_u ≥ 1
		a := map[int]float64{xIdx(vi): 1, yIdx(vi): 1, zIdx(vi): 1}
		for _, u := range nbrs {
			ui, _ := g.Index(u)
			a[yIdx(ui)] += 0.5
			a[zIdx(ui)] += 1
		}
		m.AddGreaterEqual(a, 1)

		// (b) Σ_{u∈N(v)} (y_u+z_u) ≥ x_v  ⟺  Σ(y_u+z_u) − x_v ≥ 0
		b := map[int]float64{xIdx(vi): -1}
		for _, u := range nbrs {
			ui, _ := g.Index(u)
			b[yIdx(ui)] += 1
			b[zIdx(ui)] += 1
		}
		m.AddGreaterEqual(b, 0)

		// (c) x_v+y_v+z_v ≤ 1
		m.AddLessEqual(map[int]float64{xIdx(vi): 1, yIdx(vi): 1, zIdx(vi): 1}, 1)
	}
	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return 0, err
	}
	return int(round(res.Objective)), nil
}

// KRainbowDominationNumber solves spec.md §4.4's k-rainbow domination LP
// over k colors: variables f_{v,i} (v has color i), x_v (v uncolored);
// minimize Σf_{v,i} subject to Σ_i f_{v,i}+x_v = 1 for each v and, for
// every color i, Σ_{u∈N(v)} f_{u,i} ≥ x_v for each v.
func KRainbowDominationNumber(g *core.Graph, k int, opts ...ilp.SolveOption) (int, error) {
	n := g.Order()
	numVars := n*k + n
	m := ilp.NewModel(numVars, ilp.Minimize)
	fIdx := func(v, i int) int { return v*k + i }
	xIdx := func(v int) int { return n*k + v }

	for v := 0; v < n; v++ {
		for i := 0; i < k; i++ {
			m.SetObjectiveCoeff(fIdx(v, i), 1)
		}
	}
	for _, v := range g.Vertices() {
		vi, _ := g.Index(v)
		coeffs := map[int]float64{xIdx(vi): 1}
		for i := 0; i < k; i++ {
			coeffs[fIdx(vi, i)] = 1
		}
		m.AddEquality(coeffs, 1)

		nbrs, _ := g.Neighbors(v)
		for i := 0; i < k; i++ {
			constraint := map[int]float64{xIdx(vi): -1}
			for _, u := range nbrs {
				ui, _ := g.Index(u)
				constraint[fIdx(ui, i)] += 1
			}
			m.AddGreaterEqual(constraint, 0)
		}
	}
	res, err := ilp.Solve(m, opts...)
	if err != nil {
		return 0, err
	}
	return int(round(res.Objective)), nil
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return -float64(int64(-x + 0.5))
}
