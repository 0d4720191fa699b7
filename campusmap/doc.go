// SPDX-License-Identifier: MIT

// Package campusmap loads campus maps from YAML edge tables and builds
// immutable core.Graph values from them.
//
// A map document lists its locations in index order and its corridors as
// symmetric edges:
//
//	name: campus
//	description: Main campus walking map.
//	locations: [PunchGate, Joint01]
//	edges:
//	  - {from: PunchGate, to: Joint01, weight: 35, direction: North}
//
// Each edge is added in both directions; the reverse edge carries the
// opposite compass label. Edges are applied in document order, so the
// neighbor order of a location (newest first) is fixed by the file.
//
// Two maps are embedded: "campus" (the default) and "demo", which differs in
// two weights and adds a StairsCafe↔WiFi corridor.
//
// Errors
//
//   - ErrUnknownMap: no built-in map has the requested name.
//   - ErrInvalidMap: the document cannot be parsed or describes an invalid
//     graph. The underlying core or compass sentinel stays reachable via
//     errors.Is.
package campusmap
