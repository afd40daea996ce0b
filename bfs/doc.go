// Package bfs provides breadth-first search over the water-jug state space,
// returning a shortest operator path from a start state to the objective.
//
// What
//
//   - Explore states in non-decreasing operator distance from the start.
//   - Returns a BFSResult containing:
//   - Path: start → goal
//   - Order: states in visit sequence (after the duplicate filter)
//   - Expanded / Generated: search effort counters
//   - Duplicates are filtered lazily: successors are always enqueued and a
//     state already expanded is discarded when it is dequeued again.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (after a successor is enqueued)
//   - OnDequeue (every dequeue, duplicates included)
//   - OnVisit   (when visiting; may abort with an error)
//
// Why
//
//   - Every operator costs one unit, so the first goal dequeued is reached
//     by a minimal number of operator applications.
//
// Bookkeeping
//
//	States are plain values. Predecessors are kept in an arena of nodes
//	(state, depth, parent index); the path is rebuilt by walking parent
//	indices from the goal and reversing.
//
// Determinism
//
//	Operators are applied in their fixed order, so the visit sequence and
//	the returned path are fully reproducible.
//
// Complexity (S = reachable states, k = operators)
//
//   - Time:   O(S·k)
//   - Memory: O(S·k) (the arena keeps every generated successor)
//
// Usage
//
//	// Basic BFS with defaults (buckets 4 and 3, goal a == 2):
//	res, err := bfs.BFS(core.State{})
//	if err != nil {
//		// ErrNoSolution, ErrInvalidStart, ErrOptionViolation,
//		// ErrExpansionLimit, ctx.Err(), or hook errors
//	}
//	fmt.Println(res.Path)
//
//	// With functional options:
//	res, err := bfs.BFS(
//		core.State{},
//		bfs.WithContext(ctx),
//		bfs.WithObjective(core.FirstBucketEquals(3)),
//		bfs.WithMaxExpansions(100),
//		bfs.WithOnVisit(func(s core.State, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions():          background Context, default buckets and operators, goal a == 2.
//   - WithContext(ctx):          set a custom context for cancellation.
//   - WithCapacities(caps):      other bucket sizes (rebuilds the operator set).
//   - WithOperators(ops):        replace the operator set.
//   - WithObjective(goal):       replace the goal test.
//   - WithMaxExpansions(n):      give up after n expansions (>0).
//   - WithOnEnqueue(fn), WithOnDequeue(fn), WithOnVisit(fn): hooks.
//
// Errors
//
//   - ErrNoSolution       if the frontier empties without a goal.
//   - ErrInvalidStart     if the start state violates the capacities.
//   - ErrOptionViolation  if an Option is invalid.
//   - ErrExpansionLimit   if MaxExpansions is reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
