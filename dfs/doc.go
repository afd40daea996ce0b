// Package dfs provides depth-limited depth-first search (DFS) and iterative
// deepening search (IDS) over the water-jug state space.
//
// What
//
//   - DFS(start, maxDepth, opts...): recursive search with an explicit bound.
//     Operators are tried in their fixed order and the first branch that
//     reaches the objective wins. There is no visited set; the bound alone
//     guarantees termination.
//   - IDS(start, opts...): DFS with bounds 0, 1, 2, … until the first success
//     or until the MaxDepth ceiling.
//
// Bound semantics
//
//	The bound is checked before the goal test. A node at depth == bound is
//	rejected untested, so DFS(start, 0) always fails and a goal reached after
//	d operators is found only with a bound of at least d+1. For the default
//	puzzle the shortest solution has 6 operators and DFS first succeeds with
//	a bound of 7; IDS therefore returns the same path length as BFS.
//
// Bookkeeping
//
//	The current branch lives in a path accumulator owned by each attempt:
//	successors are pushed before recursing and popped when the branch fails.
//	States are never linked to each other, so re-running from the same start
//	state cannot observe an earlier attempt.
//
// Complexity (b = applicable operators per state, d = bound)
//
//   - Time:   O(b^d) per attempt; IDS adds a constant factor.
//   - Memory: O(d) for the recursion stack and the branch.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithCapacities(caps)      other bucket sizes (rebuilds the operator set).
//   - WithOperators(ops)        replace the operator set.
//   - WithObjective(goal)       replace the goal test.
//   - WithOnVisit(fn)           pre-order hook; error aborts the search.
//   - WithOnDeepen(fn)          called by IDS before every attempt.
//   - WithMaxDepth(limit)       IDS ceiling (default DefaultIDSMaxDepth).
//
// Errors:
//
//   - ErrDepthExhausted         no goal within the bound (DFS) or ceiling (IDS).
//   - ErrInvalidStart           start violates the capacities.
//   - ErrOptionViolation        negative bound or invalid Option.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
