// SPDX-License-Identifier: MIT
package campusmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/compass"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/route"
)

// TestBuiltinProperties checks shortest-path invariants over every pair of
// every embedded map.
func TestBuiltinProperties(t *testing.T) {
	for _, name := range campusmap.BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			g, err := campusmap.BuildGraph(name)
			require.NoError(t, err)
			n := g.Len()

			dist := make([][]int64, n)
			for s := 0; s < n; s++ {
				res, err := dijkstra.ShortestPathToAll(g, s)
				require.NoError(t, err)
				dist[s] = res.Dist
				assert.Zero(t, res.Dist[s], "self distance of %s", g.Name(s))
			}

			for s := 0; s < n; s++ {
				for d := 0; d < n; d++ {
					// edges are symmetric, so distances are too
					assert.Equal(t, dist[s][d], dist[d][s], "%s↔%s", g.Name(s), g.Name(d))

					for m := 0; m < n; m++ {
						assert.LessOrEqual(t, dist[s][d], dist[s][m]+dist[m][d])
					}

					it, err := route.Plan(g, s, d)
					require.NoError(t, err)
					cost, ok := route.Cost(g, it.Route)
					require.True(t, ok)
					assert.Equal(t, it.Distance, cost, "path cost %s→%s", g.Name(s), g.Name(d))
					assert.Len(t, it.Directions, it.Route.Hops())
				}
			}
		})
	}
}

// TestBuiltinEdgeSymmetry checks that every corridor exists both ways with
// the same weight and opposite directions.
func TestBuiltinEdgeSymmetry(t *testing.T) {
	for _, name := range campusmap.BuiltinNames() {
		g, err := campusmap.BuildGraph(name)
		require.NoError(t, err)

		for _, e := range g.Edges() {
			back, ok := g.Edge(e.To, e.From)
			require.True(t, ok, "%s: missing reverse of %s→%s", name, g.Name(e.From), g.Name(e.To))
			assert.Equal(t, e.Weight, back.Weight)
			assert.Equal(t, compass.Opposite(e.Direction), back.Direction)
			assert.Equal(t, e.Direction, compass.Opposite(compass.Opposite(e.Direction)))
		}
	}
}
