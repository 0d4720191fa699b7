// SPDX-License-Identifier: MIT
// Package dijkstra defines the result type, sentinel values, errors and
// functional options for the single-source shortest-path engine.
//
// Sentinels:
//
//	– Unreachable   (math.MaxInt64) distance of a node no path reaches.
//	– NoPredecessor (-1)            predecessor of the source and of unreached nodes.
//	– NoTarget      (-1)            Result.Target of an all-destinations run.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrNoSource        if Source(...) was not supplied.
//	– ErrSourceNotFound  if the source index is outside the graph.
//	– ErrTargetNotFound  if WithTarget(...) names an index outside the graph.
//	– ErrBadMaxDistance  if WithMaxDistance receives a negative value (panics).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/campusnav/compass"
)

const (
	// Unreachable is the distance reported for nodes with no path from the source.
	// It is a sentinel, never a usable number.
	Unreachable int64 = math.MaxInt64

	// NoPredecessor marks the source and every unreached node in Result.Prev.
	NoPredecessor = -1

	// NoTarget is Result.Target for an all-destinations run.
	NoTarget = -1
)

// Sentinel errors returned by Dijkstra. All of them indicate caller misuse;
// an unreachable destination is a normal outcome, not an error.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source not set")

	// ErrSourceNotFound indicates a source index outside the graph.
	ErrSourceNotFound = errors.New("dijkstra: source not found in graph")

	// ErrTargetNotFound indicates a target index outside the graph.
	ErrTargetNotFound = errors.New("dijkstra: target not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result holds the tables produced by one run. It is created fresh per call,
// owned by the caller and never mutated by this package afterwards.
//
// Every slice has one entry per location:
//
//	Dist[v]    – least cost from Source, or Unreachable.
//	Prev[v]    – predecessor of v on one shortest path, or NoPredecessor.
//	PrevDir[v] – direction of the edge Prev[v] → v, or compass.Unknown.
//	Settled[v] – whether Dist[v] was finalized before the run stopped.
//
// With a target, the run stops as soon as the target is settled; nodes not
// yet settled may then carry tentative (non-final) distances.
type Result struct {
	Source  int
	Target  int
	Dist    []int64
	Prev    []int
	PrevDir []compass.Direction
	Settled []bool
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// DistanceTo returns the distance to v and whether it is finite.
func (r *Result) DistanceTo(v int) (int64, bool) {
	if !r.Reachable(v) {
		return Unreachable, false
	}

	return r.Dist[v], true
}

// Options configures one Dijkstra run.
//
// Source      – starting location index (required).
// Target      – optional location index; the run stops once it is settled.
// MaxDistance – nodes whose distance would exceed this stay Unreachable.
//
//	Default is math.MaxInt64 (no cap).
type Options struct {
	Source      int
	Target      int
	MaxDistance int64

	// sourceSet distinguishes Source(-1) from a missing Source option.
	sourceSet bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting location index. It must be supplied.
func Source(i int) Option {
	return func(o *Options) {
		o.Source = i
		o.sourceSet = true
	}
}

// WithTarget enables early termination once location t is settled.
// Distances of nodes not yet settled at that point are tentative.
func WithTarget(t int) Option {
	return func(o *Options) {
		o.Target = t
	}
}

// WithMaxDistance caps exploration. Negative values panic, as invalid
// option values are programming errors.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no target and no cap.
func DefaultOptions() Options {
	return Options{
		Source:      NoPredecessor,
		Target:      NoTarget,
		MaxDistance: math.MaxInt64,
	}
}
