// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood queries over the edge arena.
// Determinism:
//   - Neighbors() is stable for a given Graph instance.
//   - NeighborIDs() returns unique IDs in ascending order.

package core

import (
	"iter"
	"sort"
)

// out returns the arena range of node. It must never leave the package.
func (g *Graph) out(node int) []Edge {
	if !g.HasLocation(node) {
		return nil
	}
	lo, hi := g.offsets[node], g.offsets[node+1]

	return g.arena[lo:hi:hi]
}

// Neighbors returns a fresh copy of the outgoing edges of node in neighbor
// order. An invalid index yields nil.
//
// Complexity: O(deg(node)).
func (g *Graph) Neighbors(node int) []Edge {
	edges := g.out(node)
	if edges == nil {
		return nil
	}
	cp := make([]Edge, len(edges))
	copy(cp, edges)

	return cp
}

// OutEdges yields the outgoing edges of node by value in neighbor order,
// without allocating. An invalid index yields nothing.
func (g *Graph) OutEdges(node int) iter.Seq[Edge] {
	edges := g.out(node)

	return func(yield func(Edge) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}

// NeighborIDs returns the unique destination indices reachable from node in
// one step, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(node int) []int {
	edges := g.out(node)
	seen := make(map[int]struct{}, len(edges))
	ids := make([]int, 0, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		ids = append(ids, e.To)
	}
	sort.Ints(ids)

	return ids
}
