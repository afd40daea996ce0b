// Package bfs provides tunable options and error definitions
// for breadth-first search over the water-jug state space.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/buckets/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrNoSolution is returned when the frontier empties without reaching the objective.
	ErrNoSolution = errors.New("bfs: no solution found")

	// ErrInvalidStart is returned when the start state violates the capacity invariant.
	ErrInvalidStart = errors.New("bfs: invalid start state")

	// ErrExpansionLimit is returned when MaxExpansions states were expanded without success.
	ErrExpansionLimit = errors.New("bfs: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative expansion limit), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Capacities bound the start state; operators are built from them
	// unless WithOperators overrides the set.
	Capacities core.Capacities

	// Operators are applied in order to expand every state.
	Operators []core.Operator

	// Objective is the goal test.
	Objective core.Objective

	// OnEnqueue is called when a successor is enqueued.
	// Receives the state and its depth from the start.
	OnEnqueue func(s core.State, depth int)

	// OnDequeue is called for every dequeued state, duplicates included.
	OnDequeue func(s core.State, depth int)

	// OnVisit is called for every state that survives the duplicate filter.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(s core.State, depth int) error

	// MaxExpansions, if > 0, bounds the number of expanded states.
	// A value of 0 explicitly disables the limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - core.DefaultCapacities and their eight operators
//   - objective a == 2
//   - no expansion limit (MaxExpansions == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:           context.Background(),
		Capacities:    core.DefaultCapacities,
		Operators:     core.DefaultOperators(),
		Objective:     core.DefaultObjective(),
		OnEnqueue:     func(core.State, int) {},
		OnDequeue:     func(core.State, int) {},
		OnVisit:       func(core.State, int) error { return nil },
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCapacities switches to buckets of the given sizes and rebuilds
// the operator set for them. Invalid capacities are an ErrOptionViolation.
func WithCapacities(caps core.Capacities) Option {
	return func(o *BFSOptions) {
		ops, err := core.NewOperators(caps)
		if err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Capacities = caps
		o.Operators = ops
	}
}

// WithOperators replaces the operator set. An empty set is an ErrOptionViolation.
func WithOperators(ops []core.Operator) Option {
	return func(o *BFSOptions) {
		if len(ops) == 0 {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, core.ErrNoOperators)
			return
		}
		o.Operators = ops
	}
}

// WithObjective replaces the goal test. A nil objective is an ErrOptionViolation.
func WithObjective(goal core.Objective) Option {
	return func(o *BFSOptions) {
		if goal == nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, core.ErrNilObjective)
			return
		}
		o.Objective = goal
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s core.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s core.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(s core.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxExpansions stops the search after n expanded states.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *BFSOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}

// BFSResult holds the outcome of a BFS run:
//   - Path: start → goal, shortest by operator count.
//   - Order: states that passed the duplicate filter, in visit sequence.
//   - Expanded: number of states whose successors were generated.
//   - Generated: number of successors enqueued.
type BFSResult struct {
	Path      core.Path
	Order     []core.State
	Expanded  int
	Generated int
}
