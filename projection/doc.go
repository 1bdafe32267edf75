// Package projection builds pattern databases: the abstract state space a
// pattern induces on a planning task, and the exact goal distances inside it.
//
// Pipeline:
//
//  1. Hasher: perfect hash of abstract states. For pattern (v_0 … v_{k-1})
//     index = Σ value_i · multiplier_i with multiplier_0 = 1 and
//     multiplier_i = multiplier_{i-1} · dom(v_{i-1}).
//  2. BuildOperators: every concrete operator is projected onto the pattern
//     and expanded ("multiplied out") over the values of affected variables
//     that carry no precondition, yielding backward abstract operators.
//  3. MatchTree: an applicability index returning, for an abstract state,
//     exactly the backward operators whose regression preconditions hold.
//  4. ComputeGoalDistances: backward Dijkstra from all abstract goal states,
//     lazy decrease-key on a binary heap, Infinity for dead ends.
//  5. SaturatedCosts / ReduceCosts: cost saturation, so that distances of
//     several projections can be summed admissibly.
//  6. MeanFiniteValue: the usefulness score of a distance table.
//
// Regression convention:
//
//	A backward operator is applicable in successor state t when its
//	Preconditions (effect facts plus prevail facts, in pattern positions)
//	hold in t. The predecessor is t + HashEffect, where
//	HashEffect = Σ (pre_i − eff_i) · multiplier_i over changed positions.
//
// Complexity (n = abstract states, m = abstract operators, a = applicable
// operators per state on average):
//
//   - New:                   O(n·|goal| + Σ expansions + m·k)
//   - ComputeGoalDistances:  O(n·a·log(n·a))
//   - SaturatedCosts:        O(n·a)
//
// Projections are single-threaded while being built and solved. Once Solve
// has stored a table it is never mutated again, so solved projections may be
// read concurrently.
package projection
