// Package dfs defines types and options for depth-limited and
// iterative-deepening search, including cancellation, a pre-order hook,
// custom operators and objectives, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/buckets/core"
)

// DefaultIDSMaxDepth bounds iterative deepening for the default buckets:
// one bound per distinct state plus one, since a goal found at depth d
// needs a bound of d+1.
var DefaultIDSMaxDepth = core.DefaultCapacities.StateCount() + 1

var (
	// ErrDepthExhausted is returned when no goal lies within the depth bound
	// (for IDS: within the maximum depth).
	ErrDepthExhausted = errors.New("dfs: no solution within maximum depth")

	// ErrInvalidStart is returned when the start state violates the capacity invariant.
	ErrInvalidStart = errors.New("dfs: invalid start state")

	// ErrOptionViolation is returned for a negative depth bound or an invalid Option.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS and IDS.
// Use with DFS(start, maxDepth, opts...) or IDS(start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS and IDS.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort the search early.
	Ctx context.Context

	// Capacities bound the start state.
	Capacities core.Capacities

	// Operators are tried in order at every node.
	Operators []core.Operator

	// Objective is the goal test.
	Objective core.Objective

	// OnVisit, if non-nil, is invoked whenever a node is entered, with its depth
	// and the bound of the current attempt. Returning an error aborts the search.
	OnVisit func(s core.State, depth, bound int) error

	// OnDeepen, if non-nil, is invoked by IDS before every attempt with its bound.
	OnDeepen func(bound int)

	// MaxDepth is the largest bound IDS tries. DFS ignores it.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - core.DefaultCapacities and their eight operators
//   - objective a == 2
//   - no hooks
//   - IDS ceiling DefaultIDSMaxDepth
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		Capacities: core.DefaultCapacities,
		Operators:  core.DefaultOperators(),
		Objective:  core.DefaultObjective(),
		OnVisit:    nil,
		OnDeepen:   nil,
		MaxDepth:   DefaultIDSMaxDepth,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCapacities switches to buckets of the given sizes and rebuilds the operator set.
func WithCapacities(caps core.Capacities) Option {
	return func(o *DFSOptions) {
		ops, err := core.NewOperators(caps)
		if err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Capacities = caps
		o.Operators = ops
	}
}

// WithOperators replaces the operator set.
func WithOperators(ops []core.Operator) Option {
	return func(o *DFSOptions) {
		if len(ops) == 0 {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, core.ErrNoOperators)
			return
		}
		o.Operators = ops
	}
}

// WithObjective replaces the goal test.
func WithObjective(goal core.Objective) Option {
	return func(o *DFSOptions) {
		if goal == nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, core.ErrNilObjective)
			return
		}
		o.Objective = goal
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(s core.State, depth, bound int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnDeepen returns an Option that installs fn as the IDS per-attempt hook.
func WithOnDeepen(fn func(bound int)) Option {
	return func(o *DFSOptions) {
		o.OnDeepen = fn
	}
}

// WithMaxDepth returns an Option that sets the IDS ceiling.
// A negative limit is an ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-limited or iterative-deepening search.
type DFSResult struct {
	// Path is the explored branch from the start to the goal; nil on failure.
	Path core.Path

	// Bound is the depth bound of the successful attempt (for DFS: the bound
	// it was called with).
	Bound int

	// Visited counts entered nodes, summed over all IDS attempts.
	Visited int

	// Attempts is the number of depth-limited searches run (1 for DFS).
	Attempts int
}
