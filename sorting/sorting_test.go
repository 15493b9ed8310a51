package sorting_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/snapshot"
	"github.com/katalvlaran/stepviz/sorting"
)

type runner func(context.Context, []snapshot.Element, snapshot.ArrayPublisher, *control.Runtime) (sorting.Result, error)

var runners = map[string]runner{
	"bubble":    sorting.Bubble,
	"selection": sorting.Selection,
}

func instant() *control.Runtime {
	return control.NewRuntime(control.WithClock(control.InstantClock{}))
}

func sortedCopy(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	sort.Ints(out)
	return out
}

// TestSort_PermutationInvariant checks the final order and that every
// intermediate snapshot holds the same multiset of values.
func TestSort_PermutationInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for name, run := range runners {
		for trial := 0; trial < 20; trial++ {
			values := make([]int, rnd.Intn(16))
			for i := range values {
				values[i] = rnd.Intn(10)
			}
			want := sortedCopy(values)

			var snaps [][]snapshot.Element
			res, err := run(context.Background(), snapshot.NewElements(values),
				func(s []snapshot.Element) { snaps = append(snaps, s) }, instant())
			require.NoError(t, err)
			assert.Equal(t, want, res.Values, "%s trial %d", name, trial)
			assert.False(t, res.Cancelled)

			for k, s := range snaps {
				require.Len(t, s, len(values), "%s snapshot %d", name, k)
				assert.Equal(t, want, sortedCopy(snapshot.Values(s)), "%s snapshot %d", name, k)
			}
			if len(snaps) > 0 {
				for _, e := range snaps[len(snaps)-1] {
					assert.Equal(t, snapshot.Sorted, e.Status, name)
				}
			}
		}
	}
}

func TestBubble_Counts(t *testing.T) {
	res, err := sorting.Bubble(context.Background(), snapshot.NewElements([]int{4, 3, 2, 1}), nil, instant())
	require.NoError(t, err)
	assert.Equal(t, 6, res.Comparisons)
	assert.Equal(t, 6, res.Swaps)
}

func TestSelection_Counts(t *testing.T) {
	res, err := sorting.Selection(context.Background(), snapshot.NewElements([]int{4, 3, 2, 1}), nil, instant())
	require.NoError(t, err)
	assert.Equal(t, 6, res.Comparisons)
	assert.Equal(t, 2, res.Swaps)
}

func TestSort_InputUntouched(t *testing.T) {
	for name, run := range runners {
		in := snapshot.NewElements([]int{3, 1, 2})
		_, err := run(context.Background(), in, nil, instant())
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, snapshot.Values(in), name)
	}
}

func TestSort_Empty(t *testing.T) {
	for name, run := range runners {
		published := 0
		res, err := run(context.Background(), nil, func([]snapshot.Element) { published++ }, nil)
		require.NoError(t, err, name)
		assert.Empty(t, res.Values)
		assert.Zero(t, published)
	}
}

func TestSort_StopNoFurtherPublishes(t *testing.T) {
	for name, run := range runners {
		for _, stopAt := range []int{1, 4, 9} {
			rt := instant()
			published := 0
			res, err := run(context.Background(), snapshot.NewElements([]int{9, 8, 7, 6, 5, 4}),
				func([]snapshot.Element) {
					published++
					if published == stopAt {
						rt.Signals.Stop()
					}
				}, rt)
			require.NoError(t, err)
			assert.True(t, res.Cancelled, "%s stop at %d", name, stopAt)
			assert.Equal(t, stopAt, published, "%s stop at %d", name, stopAt)
		}
	}
}

// TestSort_StopDuringPause stops a paused run and expects it to return
// promptly without further snapshots.
func TestSort_StopDuringPause(t *testing.T) {
	sig := control.NewSignals()
	rt := control.NewRuntime(control.WithSignals(sig))
	published := make(chan struct{}, 64)
	done := make(chan sorting.Result, 1)

	sig.Pause()
	go func() {
		res, _ := sorting.Bubble(context.Background(), snapshot.NewElements([]int{3, 2, 1}),
			func([]snapshot.Element) { published <- struct{}{} }, rt)
		done <- res
	}()

	sig.Stop()
	select {
	case res := <-done:
		assert.True(t, res.Cancelled)
	case <-time.After(control.PollInterval * 3):
		t.Fatal("run did not stop within the poll bound")
	}
	assert.Empty(t, published)
}
