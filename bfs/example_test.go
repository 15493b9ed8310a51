package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/snapshot"
)

// ExampleTree prints the level order of a seven-element implicit tree.
func ExampleTree() {
	arr := snapshot.NewElements([]int{50, 30, 70, 20, 40, 60, 80})
	rt := control.NewRuntime(control.WithClock(control.InstantClock{}))

	res, err := bfs.Tree(context.Background(), arr, nil, rt)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, i := range res.Order {
		fmt.Print(arr[i].Value, " ")
	}
	fmt.Println()
	// Output:
	// 50 30 70 20 40 60 80
}
