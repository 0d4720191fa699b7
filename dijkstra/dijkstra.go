// SPDX-License-Identifier: MIT
// Package dijkstra implements a label-setting single-source shortest-path
// search over a core.Graph with strictly positive integer weights.
//
// The graph is small, so the next node to settle is chosen by a linear scan
// of the tentative-distance table instead of a heap:
//
//   - Time:  O(V² + E)
//   - Space: O(V) for the distance, predecessor, direction and settled tables.
//
// Tie-breaking is part of the contract: among unsettled nodes with equal
// smallest distance, the lowest index is settled first; relaxation only
// replaces a predecessor on a strictly shorter distance.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/campusnav/compass"
	"github.com/katalvlaran/campusnav/core"
)

// Dijkstra computes least-cost distances and a predecessor tree from the
// source set via Source(...). With WithTarget(...) it stops as soon as the
// target is settled.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be supplied (ErrNoSource).
//  3. Source must be a valid index (ErrSourceNotFound).
//  4. Target, if supplied, must be a valid index (ErrTargetNotFound).
//
// Unreachable nodes keep Dist == Unreachable and Prev == NoPredecessor; that
// is a result, not an error.
//
// Complexity: O(V² + E) time, O(V) space.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !cfg.sourceSet {
		return nil, ErrNoSource
	}
	if !g.HasLocation(cfg.Source) {
		return nil, fmt.Errorf("%w: index %d", ErrSourceNotFound, cfg.Source)
	}
	if cfg.Target != NoTarget && !g.HasLocation(cfg.Target) {
		return nil, fmt.Errorf("%w: index %d", ErrTargetNotFound, cfg.Target)
	}

	// 3) Allocate per-query tables and run.
	r := newRunner(g, cfg)
	r.init()
	r.process()

	return r.res, nil
}

// ShortestPathTo runs the single-target variant and returns the destination
// distance (Unreachable when there is no path) with the full tables needed
// for route reconstruction.
func ShortestPathTo(g *core.Graph, source, target int) (int64, *Result, error) {
	res, err := Dijkstra(g, Source(source), WithTarget(target))
	if err != nil {
		return Unreachable, nil, err
	}

	return res.Dist[target], res, nil
}

// ShortestPathToAll runs to exhaustion and returns distances to every node.
func ShortestPathToAll(g *core.Graph, source int) (*Result, error) {
	return Dijkstra(g, Source(source))
}

// runner holds the mutable state of a single execution.
type runner struct {
	g       *core.Graph // read-only input
	options Options
	res     *Result
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.Len()

	return &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:  cfg.Source,
			Target:  cfg.Target,
			Dist:    make([]int64, n),
			Prev:    make([]int, n),
			PrevDir: make([]compass.Direction, n),
			Settled: make([]bool, n),
		},
	}
}

// init sets every distance to Unreachable and the source to zero.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = Unreachable
		r.res.Prev[v] = NoPredecessor
		r.res.PrevDir[v] = compass.Unknown
	}
	r.res.Dist[r.options.Source] = 0
}

// process settles up to V nodes. It stops when no unsettled node has a finite
// distance, when the next candidate lies beyond MaxDistance, or when the
// target has just been settled.
func (r *runner) process() {
	for round := 0; round < len(r.res.Dist); round++ {
		u := r.next()
		if u == NoPredecessor {
			return
		}
		if r.res.Dist[u] > r.options.MaxDistance {
			return
		}

		r.res.Settled[u] = true
		if u == r.options.Target {
			return
		}

		r.relax(u)
	}
}

// next returns the unsettled node with the smallest finite distance, scanning
// in index order so the first minimum (lowest index) wins. NoPredecessor
// signals that nothing reachable is left.
func (r *runner) next() int {
	best := NoPredecessor
	for v, d := range r.res.Dist {
		if r.res.Settled[v] || d == Unreachable {
			continue
		}
		if best == NoPredecessor || d < r.res.Dist[best] {
			best = v
		}
	}

	return best
}

// relax tries to improve every neighbor of the freshly settled node u.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	// Unreachable itself is never a valid distance
	limit := min(r.options.MaxDistance, Unreachable-1)
	for e := range r.g.OutEdges(u) {
		v := e.To
		if r.res.Settled[v] {
			continue
		}

		// compare before adding so du+w cannot overflow
		if e.Weight > limit-du {
			continue
		}
		nd := du + e.Weight
		// strict: an equal-cost path never replaces the recorded predecessor
		if nd >= r.res.Dist[v] {
			continue
		}

		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		r.res.PrevDir[v] = e.Direction
	}
}
