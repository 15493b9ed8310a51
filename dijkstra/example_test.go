package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/graph"
)

// ExampleTrace prints the final distances and the last three descriptions.
func ExampleTrace() {
	g := graph.New(3,
		graph.Edge{Source: 0, Target: 1, Weight: 5},
		graph.Edge{Source: 1, Target: 2, Weight: 1},
	)
	res, err := dijkstra.Trace(g, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Distances[0], res.Distances[1], res.Distances[2])
	for i := res.Steps.Len() - 3; i < res.Steps.Len(); i++ {
		s, _ := res.Steps.At(i)
		fmt.Println(s.Kind, "|", s.Description)
	}
	// Output:
	// 0 5 6
	// visited | Marked node 2 as visited.
	// checking | Checking neighbor 1 with edge weight 1.
	// complete | Algorithm complete.
}
