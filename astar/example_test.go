package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/astar"
	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/gridgraph"
)

// ExampleRun finds a route around a wall and prints the final snapshot.
func ExampleRun() {
	g, start, target, err := gridgraph.Parse([]string{
		"S.#.",
		"..#.",
		"...T",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	var last *gridgraph.Grid
	rt := control.NewRuntime(control.WithClock(control.InstantClock{}))
	res, err := astar.Run(context.Background(), g, start, target,
		func(snap *gridgraph.Grid) { last = snap }, rt)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("found=%v steps=%d cost=%.0f\n", res.Found, len(res.Path)-1, res.Cost)
	fmt.Println(last.Count("path") == len(res.Path))
	// Output:
	// found=true steps=5 cost=5
	// true
}
