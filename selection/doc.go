// Package selection greedily builds a pattern database collection under
// resource budgets, with cost saturation between the accepted projections.
//
// Select pulls candidate patterns from a pattern.Source (by default a
// pattern.Sequential over pattern.Interesting, i.e. all interesting patterns
// in non-decreasing size order) and runs a single-threaded state machine:
//
//	RUNNING ──timer expired──────────────▶ TIME_EXPIRED ─────────┐
//	   │    ──source exhausted───────────▶ PATTERNS_EXHAUSTED ───┼──▶ DONE
//	   │    ──len(collection)==MaxPatterns▶ MAX_PATTERNS_REACHED ─┘
//	   └── per pattern: size filter → collection budget → build
//	       → (precheck) → solve → score → accept & saturate | discard
//
// A pattern is accepted iff the mean of its finite goal distances under the
// current residual costs is strictly positive (+Inf counts as positive).
// Accepting a pattern subtracts its saturated costs from the residual cost
// vector, so the distances of all accepted projections may be summed.
//
// Budgets (all optional; "unbounded" is the representable maximum):
//
//   - MaxPatternSize:    largest pattern handed out by the default source.
//   - MaxPDBSize:        largest abstract state count of one projection.
//   - MaxCollectionSize: largest summed state count of the collection.
//   - MaxPatterns:       largest number of accepted projections.
//   - MaxTime:           wall-clock budget, checked between patterns only.
//
// Budget stops are not errors: Select returns the collection accumulated so
// far together with the reason it stopped. Errors are reserved for invalid
// input (task, options) and unrepresentable operator expansions.
//
// Observability: progress is logged through a zerolog.Logger (Info for
// accepted patterns and the stop reason, Debug for every skipped pattern when
// Debug is set); counters are registered on an optional
// prometheus.Registerer.
package selection
