package matching_test

import (
	"fmt"

	"github.com/stabkit/stabkit/matching"
)

// ExampleMatch pairs four defects so that total pairing weight is minimal.
func ExampleMatch() {
	edges := []matching.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 2, V: 3, Weight: 2},
		{U: 0, V: 2, Weight: 3},
		{U: 1, V: 3, Weight: 3},
		{U: 0, V: 3, Weight: 7},
		{U: 1, V: 2, Weight: 1},
	}

	pairs, err := matching.Match(4, edges)
	if err != nil {
		fmt.Println("match failed:", err)
		return
	}
	for _, p := range pairs {
		fmt.Printf("%d ↔ %d\n", p[0], p[1])
	}
	// Output:
	// 0 ↔ 1
	// 2 ↔ 3
}
