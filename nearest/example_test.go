// SPDX-License-Identifier: MIT
package nearest_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/nearest"
)

func ExampleNearestK() {
	g := campusmap.MustDefault()
	src, _ := g.IndexOf("Ground")

	entries, _ := nearest.NearestK(g, src, nearest.DefaultK)
	for i, e := range entries {
		fmt.Printf("%d. %s (%d) %v\n", i+1, g.Name(e.Location), e.Distance, e.Directions)
	}
	// Output:
	// 1. WiFi (20) [West]
	// 2. Auditorium (35) [South]
	// 3. Gate (35) [North]
}
