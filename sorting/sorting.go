// SPDX-License-Identifier: MIT
// Package: stepviz/sorting

package sorting

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/snapshot"
)

// Result summarises a sort run.
type Result struct {
	// Values is the working copy's values when the run ended.
	Values []int
	// Comparisons counts element comparisons performed.
	Comparisons int
	// Swaps counts exchanges performed.
	Swaps int
	// Cancelled is true when the run stopped early.
	Cancelled bool
}

// sorter carries the working copy and counters of one run.
type sorter struct {
	rt      *control.Runtime
	publish snapshot.ArrayPublisher
	arr     []snapshot.Element
	res     Result
}

func newSorter(arr []snapshot.Element, publish snapshot.ArrayPublisher, rt *control.Runtime) *sorter {
	work := snapshot.CloneElements(arr)
	snapshot.ResetStatuses(work)

	return &sorter{rt: control.OrDefault(rt), publish: publish, arr: work}
}

// step publishes the working copy and waits one animation tick.
func (s *sorter) step(ctx context.Context) bool {
	snapshot.Publish(s.publish, s.arr)

	return s.rt.Checkpoint(ctx)
}

// mark publishes without a delay, then checks for stop.
func (s *sorter) mark(ctx context.Context) bool {
	snapshot.Publish(s.publish, s.arr)

	return !s.rt.Halted(ctx)
}

func (s *sorter) finish(cancelled bool) Result {
	s.res.Values = snapshot.Values(s.arr)
	s.res.Cancelled = cancelled

	return s.res
}

func (s *sorter) swap(i, j int) {
	s.arr[i].Value, s.arr[j].Value = s.arr[j].Value, s.arr[i].Value
	s.res.Swaps++
}

// Bubble sorts a private copy of arr by adjacent exchanges.
//
// Each comparison paints the pair comparing; each exchange paints it
// swapping. After pass i the element at n-1-i is painted sorted.
// Stop and pause are checked before every comparison.
//
// Complexity: O(n²) comparisons, each publishing an O(n) copy.
func Bubble(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
	rt *control.Runtime) (Result, error) {
	s := newSorter(arr, publish, rt)
	n := len(s.arr)

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if !s.rt.Gate(ctx) {
				return s.finish(true), nil
			}
			s.arr[j].Status, s.arr[j+1].Status = snapshot.Comparing, snapshot.Comparing
			s.res.Comparisons++
			if !s.step(ctx) {
				return s.finish(true), nil
			}
			if s.arr[j].Value > s.arr[j+1].Value {
				s.arr[j].Status, s.arr[j+1].Status = snapshot.Swapping, snapshot.Swapping
				s.swap(j, j+1)
				if !s.step(ctx) {
					return s.finish(true), nil
				}
			}
			s.arr[j].Status, s.arr[j+1].Status = snapshot.Default, snapshot.Default
		}
		s.arr[n-1-i].Status = snapshot.Sorted
		s.rt.Logger.DebugContext(ctx, "bubble pass", slog.Int("pass", i), slog.Int("swaps", s.res.Swaps))
		if !s.mark(ctx) {
			return s.finish(true), nil
		}
	}

	return s.finish(false), nil
}

// Selection sorts a private copy of arr by repeatedly selecting the minimum
// of the unsorted suffix.
//
// The running minimum is painted swapping and each scanned element
// comparing. The minimum is exchanged into position i, which is then
// painted sorted. Stop and pause are checked before every comparison and
// before every exchange.
//
// Complexity: O(n²) comparisons, O(n) exchanges.
func Selection(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
	rt *control.Runtime) (Result, error) {
	s := newSorter(arr, publish, rt)
	n := len(s.arr)

	for i := 0; i < n; i++ {
		if !s.rt.Gate(ctx) {
			return s.finish(true), nil
		}
		minIdx := i
		s.arr[minIdx].Status = snapshot.Swapping
		if !s.step(ctx) {
			return s.finish(true), nil
		}

		for j := i + 1; j < n; j++ {
			if !s.rt.Gate(ctx) {
				return s.finish(true), nil
			}
			s.arr[j].Status = snapshot.Comparing
			s.res.Comparisons++
			if !s.step(ctx) {
				return s.finish(true), nil
			}
			if s.arr[j].Value < s.arr[minIdx].Value {
				s.arr[minIdx].Status = snapshot.Default
				minIdx = j
				s.arr[minIdx].Status = snapshot.Swapping
				if !s.step(ctx) {
					return s.finish(true), nil
				}
				continue
			}
			s.arr[j].Status = snapshot.Default
		}

		if !s.rt.Gate(ctx) {
			return s.finish(true), nil
		}
		if minIdx != i {
			s.arr[i].Status = snapshot.Swapping
			if !s.step(ctx) {
				return s.finish(true), nil
			}
			s.swap(i, minIdx)
			if !s.step(ctx) {
				return s.finish(true), nil
			}
		}
		s.arr[minIdx].Status = snapshot.Default
		s.arr[i].Status = snapshot.Sorted
		if !s.mark(ctx) {
			return s.finish(true), nil
		}
	}

	return s.finish(false), nil
}
