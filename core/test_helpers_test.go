// SPDX-License-Identifier: MIT
// Fixtures and assertion helpers shared by the core tests.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/campusnav/compass"
	"github.com/katalvlaran/campusnav/core"
)

// Common location names used across core tests.
const (
	NameA = "A"
	NameB = "B"
	NameC = "C"
	NameD = "D"
)

// Common weights used across core tests.
const (
	Weight1  = 1
	Weight5  = 5
	Weight10 = 10
)

// NewDiamond builds A-B(1, East), A-C(5, South), B-D(1, South), C-D(1, East)
// plus an isolated location "Island".
//
//	A ──1── B
//	│       │
//	5       1
//	│       │
//	C ──1── D      Island
func NewDiamond(t *testing.T) *core.Graph {
	t.Helper()

	b := core.NewBuilder()
	idx := map[string]int{}
	for _, name := range []string{NameA, NameB, NameC, NameD, "Island"} {
		i, err := b.AddLocation(name)
		MustNoError(t, err, "AddLocation("+name+")")
		idx[name] = i
	}
	MustNoError(t, b.AddSymmetricEdge(idx[NameA], idx[NameB], Weight1, compass.East), "AddSymmetricEdge(A,B)")
	MustNoError(t, b.AddSymmetricEdge(idx[NameA], idx[NameC], Weight5, compass.South), "AddSymmetricEdge(A,C)")
	MustNoError(t, b.AddSymmetricEdge(idx[NameB], idx[NameD], Weight1, compass.South), "AddSymmetricEdge(B,D)")
	MustNoError(t, b.AddSymmetricEdge(idx[NameC], idx[NameD], Weight1, compass.East), "AddSymmetricEdge(C,D)")

	g, err := b.Build()
	MustNoError(t, err, "Build()")

	return g
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualBool fails the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}
