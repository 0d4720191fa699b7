// SPDX-License-Identifier: MIT
package compass_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/compass"
)

// ExampleDirection_Opposite shows the reverse label stored on the mirrored edge.
func ExampleDirection_Opposite() {
	for _, d := range []compass.Direction{compass.North, compass.NorthWest, compass.Unknown} {
		fmt.Printf("%s -> %s\n", d, d.Opposite())
	}
	// Output:
	// North -> South
	// North-West -> South-East
	// Unknown -> Unknown
}
