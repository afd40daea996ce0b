// Package buckets is a state-space search demonstrator over the classic
// water-jug puzzle: two buckets holding 4 and 3 units start empty, and the
// search looks for any state where the first bucket holds exactly 2 units.
//
// Under the hood, everything is organized in small subpackages:
//
//	core/        — State, Capacities, the eight Operators, Objective, Path
//	bfs/         — breadth-first search with a lazy duplicate filter
//	dfs/         — depth-limited DFS and iterative deepening (IDS)
//	config/      — run configuration (YAML file, BUCKETS_* env, validation)
//	cmd/buckets/ — CLI printing the BFS, DFS and IDS solution paths
//
// Quick example:
//
//	res, err := bfs.BFS(core.State{})
//	// res.Path: [(0, 0), (4, 0), (1, 3), (1, 0), (0, 1), (4, 1), (2, 3)]
//
//	go run ./cmd/buckets
package buckets
