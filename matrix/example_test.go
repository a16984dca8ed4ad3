package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/matrix"
)

// ExampleWeighted_Neighbors shows neighbour enumeration on a triangle.
//
//	0 ─1─ 1
//	 \   /
//	  3 2
//	   2
func ExampleWeighted_Neighbors() {
	w, err := matrix.NewWeighted([][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for v := 0; v < w.Order(); v++ {
		fmt.Println(v, w.Neighbors(v))
	}
	fmt.Println("edges:", len(w.Edges()))
	// Output:
	// 0 [1 2]
	// 1 [0 2]
	// 2 [0 1]
	// edges: 3
}
