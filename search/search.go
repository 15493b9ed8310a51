package search

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/snapshot"
)

// Result describes a finished search.
type Result struct {
	// Target is the value searched for.
	Target int
	// Index is the position of Target in the sorted copy, or -1.
	Index int
	// Found reports whether Target was located.
	Found bool
	// Probes counts inspected positions.
	Probes int
	// Sorted is the ascending copy the search ran on.
	Sorted []int
	// Cancelled is true when the run stopped early.
	Cancelled bool
}

// prober holds the state shared by both search flavours.
type prober struct {
	rt      *control.Runtime
	publish snapshot.ArrayPublisher
	arr     []snapshot.Element
	delay   time.Duration
	res     Result
}

// prepare sorts a private copy, publishes it and picks the target.
// It returns nil for empty input.
func prepare(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
	rt *control.Runtime, cfg config) *prober {
	if len(arr) == 0 {
		return nil
	}
	rt = control.OrDefault(rt)
	work := snapshot.CloneElements(arr)
	snapshot.ResetStatuses(work)
	slices.SortStableFunc(work, func(a, b snapshot.Element) int { return cmp.Compare(a.Value, b.Value) })

	target := cfg.target
	if !cfg.hasTarget {
		target = work[cfg.rng.Intn(len(work))].Value
	}
	p := &prober{
		rt:      rt,
		publish: publish,
		arr:     work,
		delay:   max(rt.Speed, cfg.minDelay),
		res:     Result{Target: target, Index: -1, Sorted: snapshot.Values(work)},
	}
	snapshot.Publish(publish, work)
	rt.Report(ctx, fmt.Sprintf("Searching for %d", target))

	return p
}

// paint marks everything outside [low, high] discarded and pos comparing,
// publishes, and waits. It returns false if the run was stopped.
func (p *prober) paint(ctx context.Context, low, high, pos int) bool {
	for i := range p.arr {
		switch {
		case i == pos:
			p.arr[i].Status = snapshot.Comparing
		case i < low || i > high:
			p.arr[i].Status = snapshot.Discarded
		default:
			p.arr[i].Status = snapshot.Default
		}
	}
	p.res.Probes++
	p.rt.Logger.DebugContext(ctx, "search probe",
		slog.Int("low", low), slog.Int("high", high), slog.Int("pos", pos), slog.Int("value", p.arr[pos].Value))
	snapshot.Publish(p.publish, p.arr)

	return p.rt.Wait(ctx, p.delay)
}

// found marks pos and finishes the run.
func (p *prober) found(ctx context.Context, pos int) Result {
	p.arr[pos].Status = snapshot.Found
	p.res.Found = true
	p.res.Index = pos
	snapshot.Publish(p.publish, p.arr)
	p.rt.Report(ctx, fmt.Sprintf("Found %d at index %d", p.res.Target, pos))
	p.res.Cancelled = !p.rt.Wait(ctx, p.delay)

	return p.res
}

// missed reports an absent target.
func (p *prober) missed(ctx context.Context) Result {
	p.rt.Report(ctx, fmt.Sprintf("%d not found", p.res.Target))

	return p.res
}

// Binary runs an animated binary search over a sorted copy of arr.
//
// mid = (low+high)/2. Each probe repaints the array: cells outside
// [low, high] discarded, mid comparing. A match is painted found.
//
// Complexity: O(log n) probes, each publishing an O(n) copy.
func Binary(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
	rt *control.Runtime, opts ...Option) (Result, error) {
	p := prepare(ctx, arr, publish, rt, newConfig(DefaultBinaryMinDelay, opts...))
	if p == nil {
		return Result{Index: -1}, nil
	}

	low, high := 0, len(p.arr)-1
	for low <= high {
		if !p.rt.Gate(ctx) {
			p.res.Cancelled = true
			return p.res, nil
		}
		mid := (low + high) / 2
		if !p.paint(ctx, low, high, mid) {
			p.res.Cancelled = true
			return p.res, nil
		}
		switch v := p.arr[mid].Value; {
		case v == p.res.Target:
			return p.found(ctx, mid), nil
		case v < p.res.Target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return p.missed(ctx), nil
}

// Interpolation runs an animated interpolation search over a sorted copy of
// arr. The probe is
//
//	pos = low + floor((high-low)/(v[high]-v[low]) * (target-v[low]))
//
// evaluated only while low <= high and v[low] <= target <= v[high]. The
// degenerate cases low == high and v[low] == v[high] probe low directly, so
// the formula never divides by zero.
//
// Complexity: O(log log n) probes on uniform data, O(n) worst case.
func Interpolation(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
	rt *control.Runtime, opts ...Option) (Result, error) {
	p := prepare(ctx, arr, publish, rt, newConfig(DefaultInterpolationMinDelay, opts...))
	if p == nil {
		return Result{Index: -1}, nil
	}

	target := p.res.Target
	low, high := 0, len(p.arr)-1
	for low <= high && target >= p.arr[low].Value && target <= p.arr[high].Value {
		if !p.rt.Gate(ctx) {
			p.res.Cancelled = true
			return p.res, nil
		}
		pos := interpolate(p.arr, low, high, target)
		if !p.paint(ctx, low, high, pos) {
			p.res.Cancelled = true
			return p.res, nil
		}
		switch v := p.arr[pos].Value; {
		case v == target:
			return p.found(ctx, pos), nil
		case low == high:
			return p.missed(ctx), nil
		case v < target:
			low = pos + 1
		default:
			high = pos - 1
		}
	}

	return p.missed(ctx), nil
}

// interpolate returns the probe position in [low, high].
func interpolate(arr []snapshot.Element, low, high, target int) int {
	lo, hi := arr[low].Value, arr[high].Value
	if low == high || lo == hi {
		return low
	}
	ratio := float64(high-low) / float64(hi-lo)
	pos := low + int(math.Floor(ratio*float64(target-lo)))

	return min(max(pos, low), high)
}
