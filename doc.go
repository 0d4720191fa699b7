// SPDX-License-Identifier: MIT

// Package campusnav answers two questions about a walking map of a campus:
// how to get from one place to another, and which places are closest.
//
// The map is a small weighted graph. Every corridor is walkable both ways
// and carries a compass label (the reverse walk gets the opposite label), so
// an answer can be given as a distance plus a chain of headings such as
// "North -> North-West -> North".
//
// Packages:
//
//	compass/     the eight compass points, parsing and opposites
//	core/        immutable Graph of named locations and labelled edges, built by a Builder
//	dijkstra/    single-source shortest paths with optional early exit
//	route/       predecessor-table reconstruction, direction chains, itineraries
//	nearest/     the K closest locations with their routes
//	bfs/         hop-count traversal and connected components
//	campusmap/   YAML edge tables, the embedded "campus" and "demo" maps
//	navigator/   name resolution, the numbered menu and terminal rendering
//
// The command lives in cmd/campusnav:
//
//	go run ./cmd/campusnav route PunchGate Gate
package campusnav
