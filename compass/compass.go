// SPDX-License-Identifier: MIT
// Package compass defines the closed eight-label direction vocabulary used to
// annotate campus map edges, and the opposite-direction involution that keeps
// symmetric edge pairs consistent.
//
// The zero value Unknown is not a compass point. It is the placeholder reported
// when a direction cannot be determined (for example, a route step with no
// direct edge). Opposite maps every compass point to its reverse and returns any
// other value unchanged, so it is total and never fails.
package compass

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownDirection is returned by Parse for labels outside the vocabulary.
var ErrUnknownDirection = errors.New("compass: unknown direction")

// Direction is one of the eight compass points, or Unknown.
type Direction uint8

// Compass points in clockwise order starting at North.
const (
	Unknown Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// labels holds the canonical display label of each direction.
var labels = [...]string{
	Unknown:   "Unknown",
	North:     "North",
	NorthEast: "North-East",
	East:      "East",
	SouthEast: "South-East",
	South:     "South",
	SouthWest: "South-West",
	West:      "West",
	NorthWest: "North-West",
}

// opposites is the explicit lookup table behind Opposite.
var opposites = [...]Direction{
	Unknown:   Unknown,
	North:     South,
	NorthEast: SouthWest,
	East:      West,
	SouthEast: NorthWest,
	South:     North,
	SouthWest: NorthEast,
	West:      East,
	NorthWest: SouthEast,
}

// aliases maps normalized spellings (lower case, no separators) to directions.
var aliases = map[string]Direction{
	"north": North, "n": North,
	"northeast": NorthEast, "ne": NorthEast,
	"east": East, "e": East,
	"southeast": SouthEast, "se": SouthEast,
	"south": South, "s": South,
	"southwest": SouthWest, "sw": SouthWest,
	"west": West, "w": West,
	"northwest": NorthWest, "nw": NorthWest,
}

// All returns the eight compass points in clockwise order.
func All() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// Valid reports whether d is one of the eight compass points.
func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

// String returns the canonical label ("North", "South-West", ...).
// Values outside the vocabulary render as "Unknown".
func (d Direction) String() string {
	if int(d) < len(labels) {
		return labels[d]
	}

	return labels[Unknown]
}

// Opposite returns the reverse compass point. It is an involution on the eight
// compass points; any other value is returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}

	return opposites[d]
}

// Opposite is the free-function form of Direction.Opposite.
func Opposite(d Direction) Direction { return d.Opposite() }

// Parse converts a label into a Direction. Matching ignores case, spaces,
// hyphens and underscores, and accepts the two-letter abbreviations
// ("N", "NE", ...). Anything else yields ErrUnknownDirection.
func Parse(s string) (Direction, error) {
	key := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)

	if d, ok := aliases[key]; ok {
		return d, nil
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
