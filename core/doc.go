// SPDX-License-Identifier: MIT
// Package core provides the immutable, index-based Graph used to model a
// campus map: named Locations joined by weighted, compass-labelled edges.
//
// A Graph G = (V, E) is assembled once with a Builder and is read-only after
// Build returns. This makes a single *Graph safe to share between any number
// of concurrent readers without locking.
//
//   - Locations are identified by a dense index 0..N-1 and a unique display name.
//   - Edges are always added in symmetric pairs by AddSymmetricEdge:
//     (a→b, w, d) and (b→a, w, compass.Opposite(d)).
//   - Outgoing edges live in a single contiguous arena; location i owns the
//     range [offset[i], offset[i+1]). Neighbors returns a copy of that
//     range and OutEdges iterates it by value without allocating, so callers
//     can never write into the arena.
//   - Within a range, edges are ordered newest first (reverse insertion
//     order). The order is deterministic for a given build sequence; callers
//     should not rely on it for anything but reproducibility.
//
// Builder API:
//
//	NewBuilder() *Builder
//	(*Builder).AddLocation(name string) (int, error)                          // O(1)
//	(*Builder).AddSymmetricEdge(a, b int, w int64, d compass.Direction) error // O(1)
//	(*Builder).Build() (*Graph, error)                                        // O(V+E)
//
// Graph API:
//
//	Len() int                                   // number of locations
//	EdgeCount() int                             // number of directed edges
//	HasLocation(i int) bool
//	Location(i int) (Location, error)
//	Name(i int) string                          // "" for invalid indices
//	Locations() []Location                      // fresh copy, index order
//	IndexOf(name string) (int, bool)            // exact name match
//	Neighbors(i int) []Edge                     // fresh copy
//	OutEdges(i int) iter.Seq[Edge]              // by value, no allocation
//	NeighborIDs(i int) []int                    // unique, ascending
//	Edge(from, to int) (Edge, bool)             // first match in neighbor order
//	EdgeDirection(from, to int) (compass.Direction, bool)
//	Edges() []Edge                              // all directed edges, arena order
//
// Errors:
//
//	ErrEmptyName        – AddLocation("")
//	ErrDuplicateName    – AddLocation with an existing name
//	ErrLocationNotFound – index outside 0..N-1
//	ErrLoopNotAllowed   – AddSymmetricEdge(a, a, ...)
//	ErrBadWeight        – weight ≤ 0 or weight > MaxWeight
//	ErrBadDirection     – direction outside the eight compass points
//	ErrBuilderSealed    – mutation after Build
//
// All of these are construction-time failures in a fixed edge table. The
// map loader treats them as fatal; no query on a built Graph can fail.
package core
