package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/buckets/bfs"
	"github.com/katalvlaran/buckets/core"
)

// ExampleBFS finds the shortest way to leave 2 units in the first bucket.
func ExampleBFS() {
	res, err := bfs.BFS(core.State{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Println("operators:", res.Path.Len())
	// Output:
	// [(0, 0), (4, 0), (1, 3), (1, 0), (0, 1), (4, 1), (2, 3)]
	// operators: 6
}

// ExampleWithObjective measures 3 units instead.
func ExampleWithObjective() {
	res, err := bfs.BFS(core.State{}, bfs.WithObjective(core.FirstBucketEquals(3)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// [(0, 0), (0, 3), (3, 0)]
}
