package core

import "sort"

// Connected reports whether g has at most one component. The empty graph
// and single-vertex graphs are considered connected.
func (g *Graph) Connected() bool {
	return len(g.Components()) <= 1
}

// Components returns the vertex sets of every connected component of g,
// each sorted, in an unspecified component order.
func (g *Graph) Components() [][]string {
	g.mu.RLock()
	order := make([]string, len(g.order))
	copy(order, g.order)
	adj := make(map[string]map[string]struct{}, len(g.adj))
	for v, nbrs := range g.adj {
		adj[v] = nbrs
	}
	g.mu.RUnlock()

	visited := make(map[string]bool, len(order))
	var comps [][]string
	for _, root := range order {
		if visited[root] {
			continue
		}
		queue := []string{root}
		visited[root] = true
		var comp []string
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for u := range adj[v] {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	return comps
}
