// Package collection holds the output of pattern selection: an ordered list
// of solved projections whose goal distances may be summed admissibly, and
// the heuristic queries downstream evaluators run against it.
//
// A Collection is built by a single owner and is read-only once returned.
// Distance tables are never mutated after Solve, so a returned Collection
// may be shared by any number of concurrent readers without locking.
package collection
