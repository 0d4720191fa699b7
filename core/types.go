// SPDX-License-Identifier: MIT
// Package core defines the Location, Edge, Graph and Builder types and the
// sentinel errors returned while assembling a Graph.
package core

import (
	"errors"
	"math"

	"github.com/katalvlaran/campusnav/compass"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyName indicates that a location was added with an empty name.
	ErrEmptyName = errors.New("core: location name is empty")

	// ErrDuplicateName indicates that a location name is already taken.
	ErrDuplicateName = errors.New("core: duplicate location name")

	// ErrLocationNotFound indicates an index outside 0..N-1.
	ErrLocationNotFound = errors.New("core: location not found")

	// ErrLoopNotAllowed indicates an edge whose endpoints coincide.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a weight outside 1..MaxWeight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrBadDirection indicates a direction that is not one of the eight compass points.
	ErrBadDirection = errors.New("core: edge direction is not a compass point")

	// ErrBuilderSealed indicates a mutation attempted after Build.
	ErrBuilderSealed = errors.New("core: builder already built")
)

// MaxWeight is the largest accepted edge weight. Path sums over any graph
// with fewer than 2^32 locations stay below math.MaxInt64.
const MaxWeight int64 = math.MaxInt32

// Location is a named point on the map.
type Location struct {
	// Index is the stable position of the location, 0..N-1.
	Index int

	// Name is the unique display name.
	Name string
}

// Edge is one directed, weighted, compass-labelled connection.
type Edge struct {
	From      int               // source location index
	To        int               // destination location index
	Weight    int64             // strictly positive cost
	Direction compass.Direction // heading when travelling From → To
}

// Graph is an immutable campus map. Construct it with a Builder.
//
// offsets has Len()+1 entries; the outgoing edges of location i are
// arena[offsets[i]:offsets[i+1]].
type Graph struct {
	locations []Location
	byName    map[string]int
	offsets   []int
	arena     []Edge
}

// Builder accumulates locations and symmetric edges, then compacts them into
// a Graph. A Builder is single-use: once Build succeeds further mutations fail
// with ErrBuilderSealed and Build returns the same Graph.
//
// Builder is not safe for concurrent use.
type Builder struct {
	locations []Location
	byName    map[string]int

	// out[i] holds edges leaving i in insertion order; Build reverses them.
	out   [][]Edge
	edges int

	built *Graph
}

// NewBuilder returns an empty Builder.
// Complexity: O(1).
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]int)}
}
