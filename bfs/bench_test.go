package bfs_test

import (
	"testing"

	"github.com/katalvlaran/buckets/bfs"
	"github.com/katalvlaran/buckets/core"
)

// BenchmarkBFS_DefaultPuzzle measures the classic 4/3 puzzle.
func BenchmarkBFS_DefaultPuzzle(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(core.State{})
	}
}

// BenchmarkBFS_Exhaustive explores every reachable state of larger buckets.
func BenchmarkBFS_Exhaustive(b *testing.B) {
	caps := core.Capacities{A: 97, B: 89}
	never := func(core.State) bool { return false }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(core.State{}, bfs.WithCapacities(caps), bfs.WithObjective(never))
	}
}
