// Package sorting animates bubble sort and selection sort.
//
// Both runners work on a private copy of the input, publish a fresh copy at
// every comparison and every exchange, and check the shared control.Runtime
// before each comparison so pausing and stopping take effect within one
// step. Every published snapshot is a permutation of the input.
package sorting
