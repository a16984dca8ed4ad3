package forest_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/matrix"
)

// ExampleCompute clusters six points into two groups: two tight triangles
// joined by one expensive bridge, which is the edge the forest cuts.
func ExampleCompute() {
	m := matrix.MustWeighted([][]float64{
		{0, 1, 2, 0, 0, 0},
		{1, 0, 1, 0, 0, 0},
		{2, 1, 0, 9, 0, 0},
		{0, 0, 9, 0, 1, 2},
		{0, 0, 0, 1, 0, 1},
		{0, 0, 0, 2, 1, 0},
	})

	msf, total, err := forest.Compute(m, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("edges:", len(msf), "cost:", total)
	fmt.Println("trees:", forest.Components(m.Order(), msf))
	// Output:
	// edges: 4 cost: 4
	// trees: [[0 1 2] [3 4 5]]
}
