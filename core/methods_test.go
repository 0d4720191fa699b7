// SPDX-License-Identifier: MIT
// Package core_test verifies Builder validation and Graph query contracts.

package core_test

import (
	"testing"

	"github.com/katalvlaran/campusnav/compass"
	"github.com/katalvlaran/campusnav/core"
)

// TestBuilder_AddLocation verifies index assignment and name validation.
func TestBuilder_AddLocation(t *testing.T) {
	b := core.NewBuilder()

	i, err := b.AddLocation(NameA)
	MustNoError(t, err, "AddLocation(A)")
	MustEqualInt(t, i, 0, "first index")

	j, err := b.AddLocation(NameB)
	MustNoError(t, err, "AddLocation(B)")
	MustEqualInt(t, j, 1, "second index")

	_, err = b.AddLocation("")
	MustErrorIs(t, err, core.ErrEmptyName, "AddLocation(empty)")

	_, err = b.AddLocation(NameA)
	MustErrorIs(t, err, core.ErrDuplicateName, "AddLocation(A) duplicate")
}

// TestBuilder_AddSymmetricEdge_Validation covers every rejected construction input.
func TestBuilder_AddSymmetricEdge_Validation(t *testing.T) {
	b := core.NewBuilder()
	a, _ := b.AddLocation(NameA)
	c, _ := b.AddLocation(NameB)

	cases := []struct {
		name   string
		from   int
		to     int
		weight int64
		dir    compass.Direction
		want   error
	}{
		{"self loop", a, a, Weight1, compass.North, core.ErrLoopNotAllowed},
		{"negative index", -1, c, Weight1, compass.North, core.ErrLocationNotFound},
		{"index too large", a, 7, Weight1, compass.North, core.ErrLocationNotFound},
		{"zero weight", a, c, 0, compass.North, core.ErrBadWeight},
		{"negative weight", a, c, -3, compass.North, core.ErrBadWeight},
		{"weight above cap", a, c, core.MaxWeight + 1, compass.North, core.ErrBadWeight},
		{"unknown direction", a, c, Weight1, compass.Unknown, core.ErrBadDirection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.AddSymmetricEdge(tc.from, tc.to, tc.weight, tc.dir)
			MustErrorIs(t, err, tc.want, tc.name)
		})
	}

	g, err := b.Build()
	MustNoError(t, err, "Build()")
	MustEqualInt(t, g.EdgeCount(), 0, "rejected edges must not be stored")
}

// TestBuilder_Sealed verifies the Builder is single-use.
func TestBuilder_Sealed(t *testing.T) {
	b := core.NewBuilder()
	a, _ := b.AddLocation(NameA)
	c, _ := b.AddLocation(NameB)
	MustNoError(t, b.AddSymmetricEdge(a, c, Weight5, compass.West), "AddSymmetricEdge")

	g1, err := b.Build()
	MustNoError(t, err, "Build() #1")

	_, err = b.AddLocation(NameC)
	MustErrorIs(t, err, core.ErrBuilderSealed, "AddLocation after Build")
	MustErrorIs(t, b.AddSymmetricEdge(a, c, Weight1, compass.East), core.ErrBuilderSealed, "AddSymmetricEdge after Build")

	g2, err := b.Build()
	MustNoError(t, err, "Build() #2")
	if g1 != g2 {
		t.Fatalf("Build() must return the same graph once sealed")
	}
}

// TestGraph_SymmetricPairs verifies that every edge (a,b,w,d) has a mirror
// (b,a,w,Opposite(d)).
func TestGraph_SymmetricPairs(t *testing.T) {
	g := NewDiamond(t)

	MustEqualInt(t, g.EdgeCount(), 8, "EdgeCount")
	for _, e := range g.Edges() {
		back, ok := g.Edge(e.To, e.From)
		MustEqualBool(t, ok, true, "mirror exists")
		if back.Weight != e.Weight {
			t.Fatalf("mirror weight: got %d; want %d", back.Weight, e.Weight)
		}
		if back.Direction != e.Direction.Opposite() {
			t.Fatalf("mirror direction of %v: got %s; want %s", e, back.Direction, e.Direction.Opposite())
		}
	}
}

func TestGraph_EdgeDirection(t *testing.T) {
	g := NewDiamond(t)
	a, _ := g.IndexOf(NameA)
	b, _ := g.IndexOf(NameB)
	d, _ := g.IndexOf(NameD)

	dir, ok := g.EdgeDirection(a, b)
	MustEqualBool(t, ok, true, "EdgeDirection(A,B) ok")
	if dir != compass.East {
		t.Fatalf("EdgeDirection(A,B) = %s; want East", dir)
	}

	dir, ok = g.EdgeDirection(b, a)
	MustEqualBool(t, ok, true, "EdgeDirection(B,A) ok")
	if dir != compass.West {
		t.Fatalf("EdgeDirection(B,A) = %s; want West", dir)
	}

	// No direct edge A→D.
	dir, ok = g.EdgeDirection(a, d)
	MustEqualBool(t, ok, false, "EdgeDirection(A,D) ok")
	if dir != compass.Unknown {
		t.Fatalf("EdgeDirection(A,D) = %s; want Unknown", dir)
	}

	// Invalid indices never panic.
	_, ok = g.EdgeDirection(-1, 99)
	MustEqualBool(t, ok, false, "EdgeDirection(invalid)")
}

// TestGraph_NeighborOrder verifies newest-first order within a location.
func TestGraph_NeighborOrder(t *testing.T) {
	g := NewDiamond(t)
	a, _ := g.IndexOf(NameA)
	b, _ := g.IndexOf(NameB)
	c, _ := g.IndexOf(NameC)

	ns := g.Neighbors(a)
	MustEqualInt(t, len(ns), 2, "len(Neighbors(A))")
	// A-B was added before A-C, so A→C comes first.
	MustEqualInt(t, ns[0].To, c, "Neighbors(A)[0].To")
	MustEqualInt(t, ns[1].To, b, "Neighbors(A)[1].To")


	ids := g.NeighborIDs(a)
	MustEqualInt(t, len(ids), 2, "len(NeighborIDs(A))")
	MustEqualInt(t, ids[0], b, "NeighborIDs ascending [0]")
	MustEqualInt(t, ids[1], c, "NeighborIDs ascending [1]")

	island, _ := g.IndexOf("Island")
	MustEqualInt(t, len(g.Neighbors(island)), 0, "isolated location")
	if g.Neighbors(42) != nil {
		t.Fatalf("Neighbors(invalid) must be nil")
	}
}

// TestGraph_NeighborsCopy verifies that writes through Neighbors never reach
// the graph.
func TestGraph_NeighborsCopy(t *testing.T) {
	g := NewDiamond(t)
	a, _ := g.IndexOf(NameA)
	c, _ := g.IndexOf(NameC)

	ns := g.Neighbors(a)
	ns[0].Weight = 1
	ns[0].Direction = compass.North

	e, ok := g.Edge(a, c)
	MustEqualBool(t, ok, true, "Edge(A,C) ok")
	MustEqualInt(t, int(e.Weight), Weight5, "Edge(A,C) weight after caller write")
	if e.Direction != compass.South {
		t.Fatalf("Edge(A,C) direction = %s; want South", e.Direction)
	}
	MustEqualInt(t, int(g.Neighbors(a)[0].Weight), Weight5, "second Neighbors call")
}

// TestGraph_OutEdges verifies the iterator matches Neighbors and stops early.
func TestGraph_OutEdges(t *testing.T) {
	g := NewDiamond(t)
	a, _ := g.IndexOf(NameA)

	var got []core.Edge
	for e := range g.OutEdges(a) {
		got = append(got, e)
	}
	want := g.Neighbors(a)
	MustEqualInt(t, len(got), len(want), "len(OutEdges(A))")
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("OutEdges(A)[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}

	n := 0
	for range g.OutEdges(a) {
		n++
		break
	}
	MustEqualInt(t, n, 1, "early break")

	for range g.OutEdges(42) {
		t.Fatalf("OutEdges(invalid) must yield nothing")
	}
}

func TestGraph_Locations(t *testing.T) {
	g := NewDiamond(t)

	MustEqualInt(t, g.Len(), 5, "Len")
	MustEqualBool(t, g.HasLocation(4), true, "HasLocation(4)")
	MustEqualBool(t, g.HasLocation(5), false, "HasLocation(5)")

	loc, err := g.Location(2)
	MustNoError(t, err, "Location(2)")
	if loc.Name != NameC || loc.Index != 2 {
		t.Fatalf("Location(2) = %+v", loc)
	}
	_, err = g.Location(-1)
	MustErrorIs(t, err, core.ErrLocationNotFound, "Location(-1)")

	if g.Name(99) != "" {
		t.Fatalf("Name(invalid) must be empty")
	}

	// Locations returns a copy.
	locs := g.Locations()
	locs[0].Name = "mutated"
	if g.Name(0) != NameA {
		t.Fatalf("Locations() must not alias internal storage")
	}

	_, ok := g.IndexOf("a")
	MustEqualBool(t, ok, false, "IndexOf is exact-match")
}
