// SPDX-License-Identifier: MIT
// Package dijkstra provides the shortest-path engine for campus maps.
//
// Overview:
//
//   - Dijkstra computes least-cost distances and a predecessor tree from one
//     source location, either to every location or, with WithTarget, up to the
//     moment a single target is settled.
//   - Weights are strictly positive integers (enforced by core.Builder), so the
//     greedy label-setting strategy is exact and negative-weight handling is
//     unnecessary.
//   - The next location to settle is found by a linear scan in index order,
//     so equal distances settle lowest index first.
//
// Entry points:
//
//	Dijkstra(g, opts...) (*Result, error)
//	ShortestPathTo(g, source, target) (dist int64, res *Result, err error)
//	ShortestPathToAll(g, source) (*Result, error)
//
// Result tables (one entry per location):
//
//   - Dist:    least cost or Unreachable (math.MaxInt64).
//   - Prev:    predecessor index or NoPredecessor (-1).
//   - PrevDir: compass label of the edge Prev[v] → v, or compass.Unknown.
//   - Settled: whether Dist is final.
//
// Callers must compare against Unreachable before using a distance as a
// number, and must treat a NoPredecessor chain as "no path".
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNoSource, ErrSourceNotFound, ErrTargetNotFound:
//     returned for misuse only. The engine is pure and deterministic given the
//     graph and the options, so repeating a query never changes its outcome.
//   - ErrBadMaxDistance: raised (via panic) by WithMaxDistance(<0).
//
// Thread safety:
//
//   - Every call allocates its own tables. The graph is read-only, so
//     independent queries on the same *core.Graph never interfere.
//
// See also:
//
//   - route.Reconstruct / route.DirectionChain: turn Result.Prev into a route.
//   - nearest.NearestK: rank the closest locations from one source.
package dijkstra
