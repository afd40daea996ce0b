// Package dfs implements depth-limited depth-first search and iterative
// deepening over the water-jug state space.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/buckets/core"
)

// dfsWalker encapsulates state during one depth-limited attempt.
type dfsWalker struct {
	opts  DFSOptions // search options
	bound int        // depth bound of this attempt
	path  core.Path  // current branch, start first
	res   *DFSResult // result collector
}

// DFS runs depth-limited depth-first search from start with the given bound.
//
// The bound is checked before the goal test: a node at depth == maxDepth
// fails without being tested, so DFS(start, 0) always fails and a goal at
// depth d requires maxDepth ≥ d+1.
//
// Returns ErrDepthExhausted when no goal lies within the bound,
// ErrOptionViolation for a negative bound or bad options, ErrInvalidStart,
// the context error on cancellation, or a wrapped OnVisit error.
func DFS(start core.State, maxDepth int, opts ...Option) (*DFSResult, error) {
	o, err := buildOptions(start, opts)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: depth bound cannot be negative (%d)", ErrOptionViolation, maxDepth)
	}

	res := &DFSResult{}
	if err = attempt(o, start, maxDepth, res); err != nil {
		return res, err
	}

	return res, nil
}

// buildOptions applies opts over the defaults and validates start.
func buildOptions(start core.State, opts []Option) (DFSOptions, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if err := start.Validate(o.Capacities); err != nil {
		return o, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}

	return o, nil
}

// attempt runs one depth-limited search into res with a fresh branch.
func attempt(o DFSOptions, start core.State, bound int, res *DFSResult) error {
	w := &dfsWalker{
		opts:  o,
		bound: bound,
		path:  make(core.Path, 1, bound+1),
		res:   res,
	}
	w.path[0] = start
	res.Attempts++
	res.Bound = bound

	found, err := w.traverse(start, 0)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: bound %d", ErrDepthExhausted, bound)
	}
	res.Path = w.path

	return nil
}

// traverse explores s at depth and reports whether a goal was reached.
// On success w.path holds the branch from the start to the goal.
func (w *dfsWalker) traverse(s core.State, depth int) (bool, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	w.res.Visited++
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s, depth, w.bound); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %s: %w", s, err)
		}
	}

	// 2. Depth bound precedes the goal test
	if depth == w.bound {
		return false, nil
	}
	if w.opts.Objective(s) {
		return true, nil
	}

	// 3. Operators in fixed order; first success wins
	for _, op := range w.opts.Operators {
		next, ok := op.Apply(s)
		if !ok {
			continue
		}
		w.path = append(w.path, next)
		found, err := w.traverse(next, depth+1)
		if err != nil || found {
			return found, err
		}
		w.path = w.path[:len(w.path)-1]
	}

	return false, nil
}
