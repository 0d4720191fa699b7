// SPDX-License-Identifier: MIT
package route

import (
	"errors"

	"github.com/katalvlaran/campusnav/compass"
)

// Sentinel errors for route reconstruction and planning.
var (
	// ErrNoRoute indicates that walking the predecessor table from the
	// destination never reached the source. Either the destination is
	// unreachable or the table belongs to a different source.
	ErrNoRoute = errors.New("route: no route from source to destination")

	// ErrUnreachable indicates that the engine reported the Unreachable
	// sentinel for the destination.
	ErrUnreachable = errors.New("route: destination unreachable")

	// ErrIndexOutOfRange indicates a source or destination outside the
	// predecessor table.
	ErrIndexOutOfRange = errors.New("route: index out of range")
)

// Route is an ordered sequence of location indices; Route[0] is the source
// and Route[len-1] the destination. A route from a location to itself is the
// single element [source].
type Route []int

// Source returns the first location, or -1 for an empty route.
func (r Route) Source() int {
	if len(r) == 0 {
		return -1
	}

	return r[0]
}

// Destination returns the last location, or -1 for an empty route.
func (r Route) Destination() int {
	if len(r) == 0 {
		return -1
	}

	return r[len(r)-1]
}

// Hops returns the number of edges traversed.
func (r Route) Hops() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// Step is one hop of an itinerary. Known is false when the graph has no
// direct edge for the pair; Direction is then compass.Unknown and Weight 0.
type Step struct {
	From      int
	To        int
	Direction compass.Direction
	Weight    int64
	Known     bool
}

// Itinerary bundles everything needed to present a route.
type Itinerary struct {
	Source      int
	Destination int
	Distance    int64
	Route       Route
	Directions  []compass.Direction
	Steps       []Step
}
