// Package evaluator answers a single question about a pattern: under the
// current residual costs, would its projection carry any information?
//
// A projection is useful iff the mean of its finite goal distances is
// positive, i.e. iff some abstract state has a finite positive distance, or
// no state is finite at all. The evaluator does not need the whole distance
// table to decide this: it runs the backward Dijkstra of the projection
// package with a settle hook and stops at the first state whose distance is
// positive. Since states settle in non-decreasing distance order, all
// earlier settled states have distance 0.
package evaluator
