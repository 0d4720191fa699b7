// SPDX-License-Identifier: MIT
// Package route turns a predecessor table into an ordered route and derives
// the compass directions and per-hop steps a traveller follows along it.
package route

import (
	"fmt"

	"github.com/katalvlaran/campusnav/compass"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// Reconstruct walks prev backward from destination until it reaches source.
//
// It never returns a partial route: if the chain ends (NoPredecessor), leaves
// the table, or runs longer than len(prev) steps without meeting source, the
// result is ErrNoRoute. This also rejects a stale table computed for another
// source. When source == destination the route is [source].
//
// Complexity: O(len(route)).
func Reconstruct(source, destination int, prev []int) (Route, error) {
	n := len(prev)
	if source < 0 || source >= n || destination < 0 || destination >= n {
		return nil, fmt.Errorf("%w: source=%d destination=%d size=%d", ErrIndexOutOfRange, source, destination, n)
	}

	walk := make([]int, 0, 8)
	cur := destination
	for steps := 0; steps <= n; steps++ {
		walk = append(walk, cur)
		if cur == source {
			reverse(walk)
			return walk, nil
		}
		cur = prev[cur]
		if cur < 0 || cur >= n {
			break
		}
	}

	return nil, fmt.Errorf("%w: %d → %d", ErrNoRoute, source, destination)
}

// DirectionChain maps each consecutive pair of r to the direction of its
// edge. A pair without a direct edge yields compass.Unknown instead of
// failing. A single-location route has an empty chain.
func DirectionChain(g *core.Graph, r Route) []compass.Direction {
	if len(r) < 2 {
		return []compass.Direction{}
	}

	chain := make([]compass.Direction, 0, len(r)-1)
	for i := 0; i+1 < len(r); i++ {
		d, _ := g.EdgeDirection(r[i], r[i+1])
		chain = append(chain, d)
	}

	return chain
}

// Steps expands r into one Step per hop with its direction and weight.
func Steps(g *core.Graph, r Route) []Step {
	if len(r) < 2 {
		return []Step{}
	}

	out := make([]Step, 0, len(r)-1)
	for i := 0; i+1 < len(r); i++ {
		s := Step{From: r[i], To: r[i+1], Direction: compass.Unknown}
		if e, ok := g.Edge(r[i], r[i+1]); ok {
			s.Direction = e.Direction
			s.Weight = e.Weight
			s.Known = true
		}
		out = append(out, s)
	}

	return out
}

// Cost sums the edge weights along r. The boolean is false if any hop has no
// direct edge.
func Cost(g *core.Graph, r Route) (int64, bool) {
	var total int64
	for i := 0; i+1 < len(r); i++ {
		e, ok := g.Edge(r[i], r[i+1])
		if !ok {
			return 0, false
		}
		total += e.Weight
	}

	return total, true
}

// Plan runs the single-target engine and assembles the full itinerary.
//
// Errors:
//   - engine misuse errors (dijkstra.ErrSourceNotFound, ...), passed through.
//   - ErrUnreachable when the destination distance is the Unreachable sentinel.
//   - ErrNoRoute if reconstruction fails (not expected for a fresh table).
func Plan(g *core.Graph, source, destination int) (*Itinerary, error) {
	dist, res, err := dijkstra.ShortestPathTo(g, source, destination)
	if err != nil {
		return nil, err
	}
	if dist == dijkstra.Unreachable {
		return nil, fmt.Errorf("%w: %q → %q", ErrUnreachable, g.Name(source), g.Name(destination))
	}

	r, err := Reconstruct(source, destination, res.Prev)
	if err != nil {
		return nil, err
	}

	return &Itinerary{
		Source:      source,
		Destination: destination,
		Distance:    dist,
		Route:       r,
		Directions:  DirectionChain(g, r),
		Steps:       Steps(g, r),
	}, nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
