// Package pattern defines patterns (ordered, duplicate-free variable lists
// that induce a projection) and the machinery that produces them.
//
// Overview:
//
//   - Pattern, Key, Equal: identity of a pattern is its variable set.
//   - Size: number of abstract states Π dom(v), rejected (never wrapped)
//     once it exceeds MaxStates.
//   - Enumerator: exhaustive "all patterns up to a size" capability.
//     Interesting is the shipped implementation; it yields the patterns
//     whose causal graph is weakly connected and whose variables all reach a
//     goal variable along pre→eff arcs.
//   - Source: lazy one-at-a-time pattern stream consumed by selection.
//     Sequential turns an Enumerator into a Source that yields patterns in
//     non-decreasing size order, caching each size class as a LIFO stack.
//
// Determinism: Interesting returns patterns sorted by size and then
// lexicographically, so Sequential yields the same sequence on every run.
package pattern
