package astar_test

import (
	"fmt"

	"github.com/katalvlaran/swapgraph/astar"
	"github.com/katalvlaran/swapgraph/core"
)

// ExampleSearchFunc finds a route on a small road map with a zero heuristic.
func ExampleSearchFunc() {
	g := core.NewGraph("home", "bakery", "park", "school")
	g.AddEdge("home", "bakery")
	g.AddEdge("bakery", "school")
	g.AddEdge("home", "park")

	res, err := astar.SearchFunc(g, "home", "school", astar.Zero[string])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output:
	// [home bakery school] 2
}
