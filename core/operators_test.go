package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buckets/core"
)

// allStates enumerates every state admitted by caps.
func allStates(caps core.Capacities) []core.State {
	out := make([]core.State, 0, caps.StateCount())
	for a := 0; a <= caps.A; a++ {
		for b := 0; b <= caps.B; b++ {
			out = append(out, core.State{A: a, B: b})
		}
	}

	return out
}

// opByName looks up an operator in ops.
func opByName(t *testing.T, ops []core.Operator, name string) core.Operator {
	t.Helper()
	for _, op := range ops {
		if op.Name == name {
			return op
		}
	}
	t.Fatalf("operator %q not found", name)

	return core.Operator{}
}

func TestNewOperators_Order(t *testing.T) {
	ops := core.DefaultOperators()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
		assert.Equal(t, core.UnitCost, op.Cost, "cost of %s", op.Name)
	}
	assert.Equal(t, []string{
		core.OpFillA, core.OpFillB, core.OpEmptyA, core.OpEmptyB,
		core.OpPourABFull, core.OpPourBAFull, core.OpPourABEmpty, core.OpPourBAEmpty,
	}, names)
}

func TestNewOperators_InvalidCapacities(t *testing.T) {
	for _, caps := range []core.Capacities{{A: 0, B: 3}, {A: 4, B: -1}} {
		_, err := core.NewOperators(caps)
		assert.ErrorIs(t, err, core.ErrInvalidCapacities)
	}
}

func TestOperators_Table(t *testing.T) {
	ops := core.DefaultOperators()
	cases := []struct {
		op   string
		in   core.State
		want core.State
		ok   bool
	}{
		{core.OpFillA, core.State{A: 0, B: 2}, core.State{A: 4, B: 2}, true},
		{core.OpFillA, core.State{A: 4, B: 0}, core.State{}, false},
		{core.OpFillB, core.State{A: 1, B: 0}, core.State{A: 1, B: 3}, true},
		{core.OpFillB, core.State{A: 1, B: 3}, core.State{}, false},
		{core.OpEmptyA, core.State{A: 3, B: 1}, core.State{A: 0, B: 1}, true},
		{core.OpEmptyA, core.State{A: 0, B: 1}, core.State{}, false},
		{core.OpEmptyB, core.State{A: 3, B: 1}, core.State{A: 3, B: 0}, true},
		{core.OpEmptyB, core.State{A: 3, B: 0}, core.State{}, false},
		{core.OpPourABFull, core.State{A: 4, B: 0}, core.State{A: 1, B: 3}, true},
		{core.OpPourABFull, core.State{A: 2, B: 1}, core.State{A: 0, B: 3}, true},
		{core.OpPourABFull, core.State{A: 1, B: 1}, core.State{}, false},
		{core.OpPourBAFull, core.State{A: 2, B: 3}, core.State{A: 4, B: 1}, true},
		{core.OpPourBAFull, core.State{A: 0, B: 3}, core.State{}, false},
		{core.OpPourABEmpty, core.State{A: 1, B: 0}, core.State{A: 0, B: 1}, true},
		{core.OpPourABEmpty, core.State{A: 3, B: 0}, core.State{}, false},
		{core.OpPourBAEmpty, core.State{A: 0, B: 3}, core.State{A: 3, B: 0}, true},
		{core.OpPourBAEmpty, core.State{A: 2, B: 3}, core.State{}, false},
	}
	for _, tc := range cases {
		got, ok := opByName(t, ops, tc.op).Apply(tc.in)
		assert.Equal(t, tc.ok, ok, "%s%s applicability", tc.op, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "%s%s", tc.op, tc.in)
		}
	}
}

// TestOperators_CapacityInvariant checks every operator on every state.
func TestOperators_CapacityInvariant(t *testing.T) {
	for _, caps := range []core.Capacities{core.DefaultCapacities, {A: 5, B: 3}, {A: 2, B: 7}} {
		ops, err := core.NewOperators(caps)
		require.NoError(t, err)
		for _, s := range allStates(caps) {
			for _, op := range ops {
				next, ok := op.Apply(s)
				if ok {
					assert.True(t, next.Valid(caps), "%s%s = %s escapes %v", op.Name, s, next, caps)
				}
			}
		}
	}
}

// TestOperators_InapplicableLeavesInput checks that a failed precondition
// produces nothing and the input is untouched.
func TestOperators_InapplicableLeavesInput(t *testing.T) {
	ops := core.DefaultOperators()
	for _, s := range allStates(core.DefaultCapacities) {
		for _, op := range ops {
			in := s
			next, ok := op.Apply(in)
			assert.Equal(t, s, in)
			if !ok {
				assert.Equal(t, core.State{}, next, "%s%s returned a state while inapplicable", op.Name, s)
			}
		}
	}
}

func TestOperators_Idempotent(t *testing.T) {
	ops := core.DefaultOperators()
	for _, name := range []string{core.OpFillA, core.OpFillB, core.OpEmptyA, core.OpEmptyB} {
		op := opByName(t, ops, name)
		for _, s := range allStates(core.DefaultCapacities) {
			once, ok := op.Apply(s)
			if !ok {
				continue
			}
			// a second application is inapplicable, leaving the state as it was after one
			twice := once
			if next, again := op.Apply(once); again {
				twice = next
			}
			assert.Equal(t, once, twice, "%s applied twice from %s", name, s)
			_, again := op.Apply(once)
			assert.False(t, again, "%s applied twice from %s", name, s)
		}
	}
}

func TestSuccessors_Start(t *testing.T) {
	moves := core.Successors(core.State{}, core.DefaultOperators())
	// FillA, FillB, PourABEmpty and PourBAEmpty apply to (0, 0)
	got := make([]string, len(moves))
	for i, m := range moves {
		got[i] = m.Operator.Name + m.State.String()
	}
	assert.Equal(t, []string{"FillA(4, 0)", "FillB(0, 3)", "PourABEmpty(0, 0)", "PourBAEmpty(0, 0)"}, got)
}

func TestExplain(t *testing.T) {
	ops := core.DefaultOperators()
	path := core.Path{{0, 0}, {4, 0}, {1, 3}, {1, 0}, {0, 1}, {4, 1}, {2, 3}}
	moves, err := core.Explain(path, ops)
	require.NoError(t, err)
	require.Len(t, moves, path.Len())

	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.Operator.Name
	}
	assert.Equal(t, []string{
		core.OpFillA, core.OpPourABFull, core.OpEmptyB,
		core.OpPourABEmpty, core.OpFillA, core.OpPourABFull,
	}, names)
	assert.Equal(t, 6, core.Cost(moves))

	_, err = core.Explain(core.Path{{0, 0}, {2, 2}}, ops)
	assert.True(t, errors.Is(err, core.ErrBrokenPath))

	_, err = core.Explain(path, nil)
	assert.ErrorIs(t, err, core.ErrNoOperators)
}
