// SPDX-License-Identifier: MIT
package route_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/route"
)

func ExamplePlan() {
	g := campusmap.MustDefault()
	from, _ := g.IndexOf("PunchGate")
	to, _ := g.IndexOf("Gate")

	it, err := route.Plan(g, from, to)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("distance:", it.Distance)
	for _, s := range it.Steps {
		fmt.Printf("%s -> %s %s (%d)\n", g.Name(s.From), g.Name(s.To), s.Direction, s.Weight)
	}
	// Output:
	// distance: 115
	// PunchGate -> Joint01 North (35)
	// Joint01 -> Ground North-West (45)
	// Ground -> Gate North (35)
}
