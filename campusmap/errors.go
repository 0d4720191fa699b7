// SPDX-License-Identifier: MIT
package campusmap

import "errors"

var (
	// ErrUnknownMap indicates that no built-in map has the requested name.
	ErrUnknownMap = errors.New("campusmap: unknown map")

	// ErrInvalidMap indicates a malformed document or an edge table that
	// does not describe a valid graph.
	ErrInvalidMap = errors.New("campusmap: invalid map")
)
