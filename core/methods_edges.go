// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Symmetric edge insertion, arena compaction (Build) and edge queries.
//
// Determinism:
//   - Build lays each location's edges out newest first, mirroring the
//     prepend-to-list order of a linked adjacency list.
//   - Edges() returns the arena in location order, then neighbor order.

package core

import (
	"fmt"

	"github.com/katalvlaran/campusnav/compass"
)

// AddSymmetricEdge inserts the directed pair (a→b, weight, dir) and
// (b→a, weight, compass.Opposite(dir)).
//
// Steps:
//  1. Reject use after Build.
//  2. Validate indices, loop, weight, direction.
//  3. Append both one-way edges.
//
// Errors:
//   - ErrBuilderSealed, ErrLocationNotFound, ErrLoopNotAllowed,
//     ErrBadWeight, ErrBadDirection (each wrapped with the offending values).
//
// Complexity: O(1) amortized.
func (b *Builder) AddSymmetricEdge(a, c int, weight int64, dir compass.Direction) error {
	if b.built != nil {
		return ErrBuilderSealed
	}
	if !b.valid(a) || !b.valid(c) {
		return fmt.Errorf("%w: edge %d→%d", ErrLocationNotFound, a, c)
	}
	if a == c {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, b.locations[a].Name)
	}
	if weight <= 0 || weight > MaxWeight {
		return fmt.Errorf("%w: %q→%q weight=%d", ErrBadWeight, b.locations[a].Name, b.locations[c].Name, weight)
	}
	if !dir.Valid() {
		return fmt.Errorf("%w: %q→%q direction=%d", ErrBadDirection, b.locations[a].Name, b.locations[c].Name, dir)
	}

	b.addOneWay(a, c, weight, dir)
	b.addOneWay(c, a, weight, dir.Opposite())

	return nil
}

// addOneWay appends a single directed edge; callers have validated it.
func (b *Builder) addOneWay(from, to int, weight int64, dir compass.Direction) {
	b.out[from] = append(b.out[from], Edge{From: from, To: to, Weight: weight, Direction: dir})
	b.edges++
}

// Build compacts the accumulated edges into an immutable Graph and seals the
// Builder. Calling Build again returns the same Graph.
//
// Complexity: O(V + E) time and space.
func (b *Builder) Build() (*Graph, error) {
	if b.built != nil {
		return b.built, nil
	}

	n := len(b.locations)
	g := &Graph{
		locations: make([]Location, n),
		byName:    make(map[string]int, n),
		offsets:   make([]int, n+1),
		arena:     make([]Edge, 0, b.edges),
	}
	copy(g.locations, b.locations)
	for name, i := range b.byName {
		g.byName[name] = i
	}

	for i := 0; i < n; i++ {
		g.offsets[i] = len(g.arena)
		// newest first
		for j := len(b.out[i]) - 1; j >= 0; j-- {
			g.arena = append(g.arena, b.out[i][j])
		}
	}
	g.offsets[n] = len(g.arena)

	b.built = g
	b.out = nil

	return g, nil
}

// EdgeCount returns the number of directed edges (twice the number of
// AddSymmetricEdge calls).
func (g *Graph) EdgeCount() int { return len(g.arena) }

// Edges returns a fresh copy of every directed edge in arena order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.arena))
	copy(out, g.arena)

	return out
}

// Edge returns the first edge from → to in neighbor order.
// The boolean is false when no direct edge exists or an index is invalid.
// Complexity: O(deg(from)).
func (g *Graph) Edge(from, to int) (Edge, bool) {
	for _, e := range g.out(from) {
		if e.To == to {
			return e, true
		}
	}

	return Edge{}, false
}

// EdgeDirection returns the compass label of the edge from → to.
// When there is no direct edge it returns (compass.Unknown, false); it never
// assumes the edge exists.
func (g *Graph) EdgeDirection(from, to int) (compass.Direction, bool) {
	e, ok := g.Edge(from, to)
	if !ok {
		return compass.Unknown, false
	}

	return e.Direction, true
}
