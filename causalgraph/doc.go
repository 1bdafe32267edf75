// Package causalgraph builds the causal graph of a planning task.
//
// Vertices are task variables. Two kinds of arcs are recorded:
//
//   - pre→eff: some operator has a precondition on u and an effect on v (u ≠ v);
//   - eff–eff: some operator has effects on both u and v (stored in both directions).
//
// The graph answers the two questions the interesting-pattern enumerator
// asks of a candidate variable set P: is CG(P) weakly connected, and does
// every variable of P reach a goal variable of P along pre→eff arcs inside P.
//
// Complexity:
//
//   - New: O(Σ_o |pre(o)|·|eff(o)| + |eff(o)|²) arc insertions, then one sort per adjacency list.
//   - IsWeaklyConnected, ReachesGoal: O(|P| + arcs inside P) using BFS.
package causalgraph
