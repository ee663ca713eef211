package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 nodes).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	// Build a 3×3 grid with edges in both directions
	g := core.NewGraph()
	link := func(a, b string) {
		g.AddEdge(a, b)
		g.AddEdge(b, a)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				link(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				link(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path in a directed network.
// Two competing routes exist from "A" to "K": one of length 4, another length 3.
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph()
	// Route1: A→B→C→D→K (4 hops)
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "K")
	// Route2: A→E→F→K (3 hops)
	g.AddEdge("A", "E")
	g.AddEdge("E", "F")
	g.AddEdge("F", "K")
	// A node nobody points at
	_ = g.AddNode("Z")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("K")
	fmt.Println(path)
	fmt.Println(res.Nodes["Z"].Reachable())
	// Output:
	// [A E F K]
	// false
}

// ExampleBFS_depthLimit shows applying WithMaxDepth to a linear chain of 10 nodes.
func ExampleBFS_depthLimit() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}
