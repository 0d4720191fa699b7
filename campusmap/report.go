// SPDX-License-Identifier: MIT
package campusmap

import (
	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
)

// Report summarizes a built graph.
type Report struct {
	Locations int
	// Corridors counts undirected connections, i.e. half the directed edges.
	Corridors  int
	Components [][]int
}

// Connected reports whether every location can reach every other.
func (r Report) Connected() bool { return len(r.Components) <= 1 }

// Isolated returns the indices that sit outside the component of location 0.
func (r Report) Isolated() []int {
	var out []int
	for i := 1; i < len(r.Components); i++ {
		out = append(out, r.Components[i]...)
	}

	return out
}

// Summarize counts the locations and corridors of g and splits it into
// connected components.
func Summarize(g *core.Graph) Report {
	if g == nil {
		return Report{}
	}

	return Report{
		Locations:  g.Len(),
		Corridors:  g.EdgeCount() / 2,
		Components: bfs.Components(g),
	}
}
