// SPDX-License-Identifier: MIT

// Package nearest ranks the locations closest to a source by shortest-path
// distance and attaches the route and compass directions to each of them.
//
// Ranking is by (distance, index) ascending, so equal distances resolve to
// the location registered first. The source itself and unreachable locations
// are never ranked, and a short ranking is never padded.
package nearest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/campusnav/compass"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/route"
)

// DefaultK is the ranking length used by the CLI.
const DefaultK = 3

// ErrNegativeK indicates a negative ranking length.
var ErrNegativeK = errors.New("nearest: k must be non-negative")

// Entry is one ranked location.
type Entry struct {
	Location   int
	Distance   int64
	Route      route.Route
	Directions []compass.Direction
}

// NearestK returns up to k locations reachable from source, closest first.
//
// It runs one all-destinations search to rank candidates and then one
// single-target search per kept entry to recover its route.
//
// Errors:
//   - ErrNegativeK if k < 0.
//   - dijkstra misuse errors (ErrNilGraph, ErrSourceNotFound), passed through.
//
// k == 0, or a source with no reachable neighbors, yields an empty non-nil
// slice.
func NearestK(g *core.Graph, source, k int) ([]Entry, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeK, k)
	}

	all, err := dijkstra.ShortestPathToAll(g, source)
	if err != nil {
		return nil, err
	}

	candidates := make([]int, 0, g.Len())
	for v := 0; v < g.Len(); v++ {
		if v != source && all.Reachable(v) {
			candidates = append(candidates, v)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if all.Dist[a] != all.Dist[b] {
			return all.Dist[a] < all.Dist[b]
		}
		return a < b
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]Entry, 0, len(candidates))
	for _, v := range candidates {
		dist, res, err := dijkstra.ShortestPathTo(g, source, v)
		if err != nil {
			return nil, err
		}
		r, err := route.Reconstruct(source, v, res.Prev)
		if err != nil {
			return nil, fmt.Errorf("nearest: location %d: %w", v, err)
		}
		out = append(out, Entry{
			Location:   v,
			Distance:   dist,
			Route:      r,
			Directions: route.DirectionChain(g, r),
		})
	}

	return out, nil
}
