// SPDX-License-Identifier: MIT
package navigator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/campusnav/core"
)

// ErrUnknownLocation indicates input that matches no location name.
var ErrUnknownLocation = errors.New("navigator: unknown location")

// Normalize drops every Unicode whitespace rune and lower-cases the rest, so
// "Lecture Gallery", "lecturegallery" and " LECTUREGALLERY " compare equal.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// Resolver maps user input to location indices.
type Resolver struct {
	byKey map[string]int
}

// NewResolver indexes the normalized names of g. If two names normalize to
// the same key the lower index wins.
func NewResolver(g *core.Graph) *Resolver {
	r := &Resolver{byKey: make(map[string]int, g.Len())}
	for _, l := range g.Locations() {
		key := Normalize(l.Name)
		if _, taken := r.byKey[key]; !taken {
			r.byKey[key] = l.Index
		}
	}

	return r
}

// Resolve returns the index of the location whose normalized name equals the
// normalized input.
func (r *Resolver) Resolve(input string) (int, bool) {
	key := Normalize(input)
	if key == "" {
		return -1, false
	}
	i, ok := r.byKey[key]

	return i, ok
}

// Lookup is Resolve with an error for unknown input.
func (r *Resolver) Lookup(input string) (int, error) {
	if i, ok := r.Resolve(input); ok {
		return i, nil
	}

	return -1, fmt.Errorf("%w: %q", ErrUnknownLocation, input)
}
