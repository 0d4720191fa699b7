// SPDX-License-Identifier: MIT
package bfs

import "github.com/katalvlaran/campusnav/core"

// Components partitions the locations of g into connected components.
// Each component is sorted ascending, and components are ordered by their
// smallest index, so location 0 is always in the first one. Edges are
// symmetric in a core.Graph, so reachability is mutual.
//
// Complexity: O(C·V + E log d) for C components.
func Components(g *core.Graph) [][]int {
	if g == nil || g.Len() == 0 {
		return nil
	}

	seen := make([]bool, g.Len())
	var out [][]int
	for v := 0; v < g.Len(); v++ {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			// v is a valid index and no options are set; BFS cannot fail here.
			continue
		}
		comp := make([]int, 0, len(res.Order))
		for u := 0; u < g.Len(); u++ {
			if res.Reached(u) {
				seen[u] = true
				comp = append(comp, u)
			}
		}
		out = append(out, comp)
	}

	return out
}
