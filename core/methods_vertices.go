// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Location registration on Builder and location queries on Graph.
//
// Determinism:
//   - Indices are assigned in registration order starting at 0.
//   - Locations() returns index order.

package core

import "fmt"

// AddLocation registers a new location and returns its index.
//
// Errors:
//   - ErrBuilderSealed if Build already ran.
//   - ErrEmptyName if name == "".
//   - ErrDuplicateName if name is already registered.
//
// Complexity: O(1) amortized.
func (b *Builder) AddLocation(name string) (int, error) {
	if b.built != nil {
		return -1, ErrBuilderSealed
	}
	if name == "" {
		return -1, ErrEmptyName
	}
	if _, exists := b.byName[name]; exists {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	idx := len(b.locations)
	b.locations = append(b.locations, Location{Index: idx, Name: name})
	b.byName[name] = idx
	b.out = append(b.out, nil)

	return idx, nil
}

// valid reports whether i is a registered location index.
func (b *Builder) valid(i int) bool {
	return i >= 0 && i < len(b.locations)
}

// Len returns the number of locations.
func (g *Graph) Len() int { return len(g.locations) }

// HasLocation reports whether i is a valid location index.
func (g *Graph) HasLocation(i int) bool {
	return i >= 0 && i < len(g.locations)
}

// Location returns the location at index i, or ErrLocationNotFound.
func (g *Graph) Location(i int) (Location, error) {
	if !g.HasLocation(i) {
		return Location{}, fmt.Errorf("%w: index %d", ErrLocationNotFound, i)
	}

	return g.locations[i], nil
}

// Name returns the display name of location i, or "" for an invalid index.
func (g *Graph) Name(i int) string {
	if !g.HasLocation(i) {
		return ""
	}

	return g.locations[i].Name
}

// Locations returns a fresh copy of all locations in index order.
// Complexity: O(V).
func (g *Graph) Locations() []Location {
	out := make([]Location, len(g.locations))
	copy(out, g.locations)

	return out
}

// IndexOf resolves an exact display name to its index.
// Case-folding and whitespace handling belong to the caller.
func (g *Graph) IndexOf(name string) (int, bool) {
	i, ok := g.byName[name]

	return i, ok
}
