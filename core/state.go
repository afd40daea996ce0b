package core

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the state as "(a, b)".
func (s State) String() string {
	return "(" + strconv.Itoa(s.A) + ", " + strconv.Itoa(s.B) + ")"
}

// Valid reports whether s satisfies the capacity invariant for caps.
func (s State) Valid(caps Capacities) bool {
	return s.A >= 0 && s.A <= caps.A && s.B >= 0 && s.B <= caps.B
}

// Validate returns ErrInvalidState if s violates the capacity invariant.
func (s State) Validate(caps Capacities) error {
	if !s.Valid(caps) {
		return fmt.Errorf("%w: %s outside capacities (%d, %d)", ErrInvalidState, s, caps.A, caps.B)
	}

	return nil
}

// ParseState parses "a,b", "a, b" or "(a, b)" into a State.
// It does not check capacities; call Validate for that.
func ParseState(text string) (State, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return State{}, fmt.Errorf("%w: %q is not an a,b pair", ErrInvalidState, text)
	}

	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return State{}, fmt.Errorf("%w: first bucket in %q: %w", ErrInvalidState, text, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return State{}, fmt.Errorf("%w: second bucket in %q: %w", ErrInvalidState, text, err)
	}

	return State{A: a, B: b}, nil
}

// FirstBucketEquals returns an Objective satisfied when the first bucket
// holds exactly n units. The second bucket is never consulted.
func FirstBucketEquals(n int) Objective {
	return func(s State) bool { return s.A == n }
}

// DefaultObjective is satisfied when the first bucket holds 2 units.
func DefaultObjective() Objective {
	return FirstBucketEquals(DefaultThreshold)
}

// String renders the path as "[(0, 0), (4, 0), ...]".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Len returns the number of operator applications along the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Goal returns the last state of the path and false for an empty path.
func (p Path) Goal() (State, bool) {
	if len(p) == 0 {
		return State{}, false
	}

	return p[len(p)-1], true
}

// Reverse returns a new path with the states in reverse order.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i := range p {
		out[i] = p[len(p)-1-i]
	}

	return out
}
