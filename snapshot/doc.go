// Package snapshot defines the visualization vocabulary shared by all runners:
// the Status tag carried by cells, elements and graph items, the array Element
// model, and the publisher callback types.
//
// Copy-on-publish
//
//	Runners mutate a private working copy and hand publishers a fresh deep
//	copy at every step, so a renderer never observes a torn state and a later
//	mutation never changes an earlier frame.
package snapshot
