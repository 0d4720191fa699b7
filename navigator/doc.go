// SPDX-License-Identifier: MIT

// Package navigator is the interactive front end of campusnav.
//
// It resolves free-text location names (case and whitespace are ignored),
// drives the numbered menu, and renders itineraries and nearest-location
// rankings to a terminal through termenv. A Session owns its input and output
// streams; the graph it queries is shared read-only.
//
//	s := navigator.NewSession(g, os.Stdin, os.Stdout,
//		navigator.WithLogger(log),
//		navigator.WithK(3),
//	)
//	err := s.Run(ctx)
package navigator
