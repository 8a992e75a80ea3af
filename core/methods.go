package core

import "sort"

// AddVertex inserts id if absent. Re-adding an existing vertex is a no-op.
//
// Complexity: O(log n) to locate the insertion point, O(n) amortized to
// shift order — acceptable for the library's small-graph target (spec.md
// §4.3: n ≲ 25 for brute routines).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	pos := sort.SearchStrings(g.order, id)
	g.order = append(g.order, "")
	copy(g.order[pos+1:], g.order[pos:])
	g.order[pos] = id
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}
	g.adj[id] = make(map[string]struct{})
}

// AddEdge connects u and v, creating either endpoint if absent. Adding an
// edge that already exists is a no-op (simple graphs have no notion of
// edge multiplicity). Self-loops are always rejected: spec.md §3 makes
// "no self-loops" an invariant of the data model, not a configurable
// option.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++
	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether {u,v} is an edge.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if nbrs, ok := g.adj[u]; ok {
		_, ok = nbrs[v]
		return ok
	}
	return false
}

// Order returns n = |V(G)|.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// Size returns m = |E(G)|.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// Vertices returns the vertex set in its fixed total order. The returned
// slice is a fresh copy; callers may mutate it freely.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Index returns the dense [0,n) position of id in the graph's fixed
// vertex ordering, for use as a bitset.Set bit index. ok is false if id is
// not a vertex of g.
func (g *Graph) Index(id string) (idx int, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok = g.index[id]
	return idx, ok
}

// VertexAt returns the vertex at dense index i, the inverse of Index.
func (g *Graph) VertexAt(i int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.order[i]
}

// Neighbors returns N(v), sorted, or ErrVertexNotFound if v is absent.
func (g *Graph) Neighbors(v string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	sort.Strings(out)
	return out, nil
}

// Degree returns d(v) = |N(v)|.
func (g *Graph) Degree(v string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[v]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return len(nbrs), nil
}

// DegreeSequence returns d(v) for every vertex, in the graph's fixed
// vertex order (not sorted by value — callers that need a sorted
// sequence, such as degseq, sort it themselves).
func (g *Graph) DegreeSequence() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.order))
	for i, v := range g.order {
		out[i] = len(g.adj[v])
	}
	return out
}

// MinDegree returns δ(G), or 0 for the empty graph.
func (g *Graph) MinDegree() int {
	seq := g.DegreeSequence()
	if len(seq) == 0 {
		return 0
	}
	m := seq[0]
	for _, d := range seq[1:] {
		if d < m {
			m = d
		}
	}
	return m
}

// MaxDegree returns Δ(G), or 0 for the empty graph.
func (g *Graph) MaxDegree() int {
	seq := g.DegreeSequence()
	m := 0
	for _, d := range seq {
		if d > m {
			m = d
		}
	}
	return m
}

// Edge is an unordered pair of vertex IDs with U <= V lexicographically,
// giving every edge a single canonical representation.
type Edge struct {
	U, V string
}

// Edges returns every edge of g exactly once, sorted by (U,V).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.order {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}
