// Package dfs implements depth-first traversals.
//
//   - Tree animates pre-order traversal of an array read as an implicit
//     binary tree (children 2i+1, 2i+2) with an explicit LIFO stack. Both
//     children are pushed unconditionally, right first, and an index is marked
//     visited only when popped, so duplicate entries are skipped on pop.
//   - TopologicalSort orders a directed graph.Graph by reverse post-order and
//     reports ErrCycleDetected on a back edge. It serves as an independent
//     check for the animated Kahn ordering in package toposort.
//
// Complexity:
//
//   - Tree:            O(n) steps, each publishing an O(n) copy.
//   - TopologicalSort: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrOptionViolation  negative MaxDepth.
//   - ErrCycleDetected    TopologicalSort on a cyclic graph.
//   - context errors      TopologicalSort cancelled via ctx.
package dfs
