// Package core provides the state model of the two-bucket water-jug puzzle:
// an immutable State value, the eight precondition-guarded Operators,
// the Objective predicate and the Path type returned by every search.
//
// The puzzle G = (S, O):
//
//   - S = {(a, b) | 0 ≤ a ≤ 4, 0 ≤ b ≤ 3}   (20 states)
//   - O = FillA, FillB, EmptyA, EmptyB,
//     PourABFull, PourBAFull, PourABEmpty, PourBAEmpty
//   - start (0, 0), goal: a == 2
//
// Why value states?
//
//   - State is comparable, so it doubles as a map key for visited sets.
//   - Operators take and return values; the input of Apply is never touched.
//   - Search bookkeeping (predecessors, the current DFS branch) lives in the
//     search packages, not on the states themselves.
//
// Operators:
//
//	| Operator    | Precondition           | Effect                      |
//	|-------------|------------------------|-----------------------------|
//	| FillA       | a < capA               | a := capA                   |
//	| FillB       | b < capB               | b := capB                   |
//	| EmptyA      | a > 0                  | a := 0                      |
//	| EmptyB      | b > 0                  | b := 0                      |
//	| PourABFull  | b < capB, a ≥ capB−b   | a := a−(capB−b); b := capB  |
//	| PourBAFull  | a < capA, b ≥ capA−a   | b := b−(capA−a); a := capA  |
//	| PourABEmpty | b < capB, a < capB−b   | b := b+a; a := 0            |
//	| PourBAEmpty | a < capA, b < capA−a   | a := a+b; b := 0            |
//
// An inapplicable operator reports ok == false rather than returning a
// sentinel state, so (0, 0) is never confused with "no successor".
//
// Usage:
//
//	ops := core.DefaultOperators()
//	for _, m := range core.Successors(core.State{}, ops) {
//		fmt.Println(m.Operator.Name, m.State)
//	}
package core
