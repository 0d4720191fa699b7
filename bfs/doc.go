// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links, and visit order.
//
// Edge weights are ignored: BFS answers "how many corridors" and "which
// locations can be reached at all", while package dijkstra answers "how far".
// campusnav uses it to check that a map is connected before serving queries.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors sorted ascending, and BFS
//	enqueues them in that order, so Order is fully reproducible.
//
// Complexity (V = locations, E = directed edges)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// a context error, or a wrapped OnVisit error
//	}
//	path, _ := res.PathTo(dest)
//
//	comps := bfs.Components(g) // len(comps) == 1 means fully connected
package bfs
