package core

import "fmt"

// Operator names, in the order NewOperators returns them.
const (
	OpFillA       = "FillA"
	OpFillB       = "FillB"
	OpEmptyA      = "EmptyA"
	OpEmptyB      = "EmptyB"
	OpPourABFull  = "PourABFull"
	OpPourBAFull  = "PourBAFull"
	OpPourABEmpty = "PourABEmpty"
	OpPourBAEmpty = "PourBAEmpty"
)

// Operator is a precondition-guarded transition between states.
//
// Apply returns the successor and true when the precondition holds,
// or the zero State and false when the operator is inapplicable.
// Apply never modifies its argument.
type Operator struct {
	// Name identifies the operator in logs and explanations.
	Name string

	// Cost is the price of one application; every built-in operator costs UnitCost.
	Cost int

	// Apply computes the successor of a state.
	Apply func(State) (State, bool)
}

// NewOperators builds the eight bucket operators for caps in their fixed order:
// FillA, FillB, EmptyA, EmptyB, PourABFull, PourBAFull, PourABEmpty, PourBAEmpty.
// Returns ErrInvalidCapacities if caps is not valid.
func NewOperators(caps Capacities) ([]Operator, error) {
	if err := caps.Validate(); err != nil {
		return nil, err
	}
	ca, cb := caps.A, caps.B

	return []Operator{
		{Name: OpFillA, Cost: UnitCost, Apply: func(s State) (State, bool) {
			if s.A >= ca {
				return State{}, false
			}
			return State{A: ca, B: s.B}, true
		}},
		{Name: OpFillB, Cost: UnitCost, Apply: func(s State) (State, bool) {
			if s.B >= cb {
				return State{}, false
			}
			return State{A: s.A, B: cb}, true
		}},
		{Name: OpEmptyA, Cost: UnitCost, Apply: func(s State) (State, bool) {
			if s.A <= 0 {
				return State{}, false
			}
			return State{A: 0, B: s.B}, true
		}},
		{Name: OpEmptyB, Cost: UnitCost, Apply: func(s State) (State, bool) {
			if s.B <= 0 {
				return State{}, false
			}
			return State{A: s.A, B: 0}, true
		}},
		// pour A into B until B is full
		{Name: OpPourABFull, Cost: UnitCost, Apply: func(s State) (State, bool) {
			room := cb - s.B
			if s.B >= cb || s.A < room {
				return State{}, false
			}
			return State{A: s.A - room, B: cb}, true
		}},
		// pour B into A until A is full
		{Name: OpPourBAFull, Cost: UnitCost, Apply: func(s State) (State, bool) {
			room := ca - s.A
			if s.A >= ca || s.B < room {
				return State{}, false
			}
			return State{A: ca, B: s.B - room}, true
		}},
		// pour A into B until A is empty
		{Name: OpPourABEmpty, Cost: UnitCost, Apply: func(s State) (State, bool) {
			if s.B >= cb || s.A >= cb-s.B {
				return State{}, false
			}
			return State{A: 0, B: s.B + s.A}, true
		}},
		// pour B into A until B is empty
		{Name: OpPourBAEmpty, Cost: UnitCost, Apply: func(s State) (State, bool) {
			if s.A >= ca || s.B >= ca-s.A {
				return State{}, false
			}
			return State{A: s.A + s.B, B: 0}, true
		}},
	}, nil
}

// DefaultOperators returns the operator set for DefaultCapacities.
func DefaultOperators() []Operator {
	ops, err := NewOperators(DefaultCapacities)
	if err != nil {
		// DefaultCapacities are positive constants.
		panic(err)
	}

	return ops
}

// Successors applies every operator in ops to s, in order, and returns
// the applicable ones together with the states they produce.
func Successors(s State, ops []Operator) []Move {
	moves := make([]Move, 0, len(ops))
	for _, op := range ops {
		if next, ok := op.Apply(s); ok {
			moves = append(moves, Move{Operator: op, State: next})
		}
	}

	return moves
}

// Explain infers, for every step of path, the first operator in ops that
// turns the prior state into the next one. The returned slice has
// path.Len() entries. Returns an error wrapping ErrBrokenPath for a step
// no operator produces.
func Explain(path Path, ops []Operator) ([]Move, error) {
	if len(ops) == 0 {
		return nil, ErrNoOperators
	}
	moves := make([]Move, 0, path.Len())
	for i := 1; i < len(path); i++ {
		prev, next := path[i-1], path[i]
		found := false
		for _, op := range ops {
			if got, ok := op.Apply(prev); ok && got == next {
				moves = append(moves, Move{Operator: op, State: next})
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: step %d %s -> %s", ErrBrokenPath, i, prev, next)
		}
	}

	return moves, nil
}

// Cost sums the operator costs of moves.
func Cost(moves []Move) int {
	total := 0
	for _, m := range moves {
		total += m.Operator.Cost
	}

	return total
}
