// Package core defines the water-jug State, the bucket Capacities,
// the Operator descriptor and the objective predicate shared by every
// search strategy in this module.
//
// This file declares State, Capacities, Move, Objective, Path,
// sentinel errors, and the default domain constants.
//
// Errors:
//
//	ErrInvalidState      - state violates the capacity invariant or cannot be parsed.
//	ErrInvalidCapacities - a bucket capacity is not positive.
//	ErrNilObjective      - a nil objective predicate was supplied.
//	ErrNoOperators       - an empty operator set was supplied.
//	ErrBrokenPath        - a path step is not produced by any operator.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core state operations.
var (
	// ErrInvalidState indicates a state outside 0 ≤ A ≤ capA, 0 ≤ B ≤ capB,
	// or a textual state that cannot be parsed.
	ErrInvalidState = errors.New("core: invalid state")

	// ErrInvalidCapacities indicates a non-positive bucket capacity.
	ErrInvalidCapacities = errors.New("core: invalid capacities")

	// ErrNilObjective indicates that a nil Objective was supplied.
	ErrNilObjective = errors.New("core: objective is nil")

	// ErrNoOperators indicates that an empty operator set was supplied.
	ErrNoOperators = errors.New("core: no operators")

	// ErrBrokenPath indicates two consecutive path states that no operator connects.
	ErrBrokenPath = errors.New("core: path step not produced by any operator")
)

// Domain constants of the classic puzzle.
const (
	// DefaultCapacityA is the size of the first bucket.
	DefaultCapacityA = 4

	// DefaultCapacityB is the size of the second bucket.
	DefaultCapacityB = 3

	// DefaultThreshold is the fill level of the first bucket that ends the search.
	DefaultThreshold = 2

	// UnitCost is the cost of every operator.
	UnitCost = 1
)

// DefaultCapacities are the bucket sizes of the puzzle: 4 and 3 units.
var DefaultCapacities = Capacities{A: DefaultCapacityA, B: DefaultCapacityB}

// State is a snapshot of both bucket levels.
//
// State is a comparable value: two states are equal iff their (A, B)
// pairs match, so State can be used directly as a map key.
type State struct {
	// A is the fill level of the first bucket.
	A int

	// B is the fill level of the second bucket.
	B int
}

// Capacities holds the fixed sizes of both buckets.
type Capacities struct {
	A int
	B int
}

// Validate returns ErrInvalidCapacities if either capacity is not positive.
func (c Capacities) Validate() error {
	if c.A <= 0 || c.B <= 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidCapacities, c.A, c.B)
	}

	return nil
}

// StateCount is the number of distinct states the capacities admit.
func (c Capacities) StateCount() int {
	return (c.A + 1) * (c.B + 1)
}

// Move pairs an operator with the state it produced.
type Move struct {
	Operator Operator
	State    State
}

// Objective is the goal test of a search.
type Objective func(State) bool

// Path is an ordered sequence of states from a start state to a goal.
type Path []State
