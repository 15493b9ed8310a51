// Package bfs animates breadth-first traversal of an array read as an
// implicit binary tree.
//
// Index i has children 2i+1 and 2i+2. The frontier is a FIFO queue and an
// index is marked visited at enqueue time, so it is processed exactly once.
//
// Every processed index produces two snapshots: processing (held for the
// runtime speed) and sorted (held for half of it). Stop and pause are checked
// at the top of each iteration and after every snapshot.
//
// Complexity:
//
//   - Time:   O(n) steps, each publishing an O(n) copy.
//   - Memory: O(n).
//
// Options:
//
//   - WithOnVisit(fn)   hook invoked for each dequeued index.
//   - WithMaxDepth(d)   do not descend past level d (0 = unlimited).
//
// Errors:
//
//   - ErrOptionViolation  for a negative MaxDepth.
package bfs
