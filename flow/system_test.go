package flow_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/pushparty/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recovered(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestReactiveSystem(t *testing.T) {
	t.Run("stats", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		x := flow.NewCell(rs, 0)
		double := flow.Computed1(x, func(v int) int { return v * 2 })
		double.Connect(func(int) {})

		x.Set(1)
		x.Set(1)
		stats := rs.Stats()
		assert.Equal(t, uint64(2), stats.Signals)
		assert.Equal(t, uint64(2), stats.Deliveries)
		assert.Equal(t, uint64(1), stats.Recomputes)
		assert.Equal(t, uint64(1), stats.Suppressed)
		assert.Equal(t, uint64(0), stats.Emissions)
	})

	t.Run("close", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		x := flow.NewCell(rs, 0)
		tr := flow.NewTrigger[int](rs)
		sum := flow.Computed1(x, func(v int) int { return v })
		evens := flow.Pipe(tr, flow.Filter(isEven))
		sumConn := sum.Connect(func(int) {})
		evensConn := evens.Connect(func(int) {})
		require.Equal(t, 4, rs.Len())

		rs.Close()
		assert.Equal(t, 0, rs.Len())
		assert.False(t, sumConn.Connected())
		assert.False(t, evensConn.Connected())
	})

	t.Run("mismatched systems", func(t *testing.T) {
		a := flow.NewTrigger[int](flow.NewReactiveSystem())
		b := flow.NewTrigger[int](flow.NewReactiveSystem())
		assert.PanicsWithValue(t, flow.ErrSystemMismatch, func() {
			flow.Merge[int](a, b)
		})
		assert.PanicsWithValue(t, flow.ErrSystemMismatch, func() {
			flow.Combine2(a, b)
		})
	})

	t.Run("no sources", func(t *testing.T) {
		assert.PanicsWithValue(t, flow.ErrNoSources, func() {
			flow.Merge[int]()
		})
		assert.PanicsWithValue(t, flow.ErrNoSources, func() {
			flow.CombineAll[string]()
		})
	})

	t.Run("closed sources", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		tr := flow.NewTrigger[int](rs)
		tr.Close()
		assert.PanicsWithValue(t, flow.ErrClosed, func() {
			flow.Pipe(tr, flow.Filter(isEven))
		})
	})

	t.Run("max depth", func(t *testing.T) {
		rs := flow.NewReactiveSystem(flow.WithMaxDepth(3))
		long := flow.NewCell(rs, 0)
		var last flow.Readable[int] = long
		for i := 0; i < 5; i++ {
			last = flow.Computed1(last, func(v int) int { return v + 1 })
		}
		last.Connect(func(int) {})

		short := flow.NewCell(rs, 0)
		double := flow.Computed1(short, func(v int) int { return v * 2 })
		double.Connect(func(int) {})

		for i := 1; i <= 3; i++ {
			err := recovered(func() { long.Set(i) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, flow.ErrMaxDepth))

			short.Set(i)
			assert.Equal(t, i*2, double.Value())
		}
	})

	t.Run("goroutine affinity", func(t *testing.T) {
		rs := flow.NewReactiveSystem(flow.WithGoroutineAffinity())
		x := flow.NewCell(rs, 0)
		tr := flow.NewTrigger[int](rs)
		x.Set(1)
		tr.Fire(1)

		errs := make(chan error, 2)
		go func() {
			errs <- recovered(func() { x.Set(2) })
			errs <- recovered(func() { tr.Fire(2) })
		}()
		for i := 0; i < 2; i++ {
			assert.ErrorIs(t, <-errs, flow.ErrWrongGoroutine)
		}
		assert.Equal(t, 1, x.Value())
	})

	t.Run("unpinned systems move between goroutines", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		x := flow.NewCell(rs, 0)
		done := make(chan error)
		go func() {
			done <- recovered(func() { x.Set(2) })
		}()
		assert.NoError(t, <-done)
		assert.Equal(t, 2, x.Value())
	})
}
