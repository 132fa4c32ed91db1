package flow_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/delaneyj/pushparty/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(v int) bool { return v%2 == 0 }

func record[T any](src flow.Source[T]) *[]T {
	got := &[]T{}
	src.Connect(func(v T) { *got = append(*got, v) })
	return got
}

func TestFilter(t *testing.T) {
	rs := flow.NewReactiveSystem()
	tr := flow.NewTrigger[int](rs)
	got := record[int](flow.Pipe(tr, flow.Filter(isEven)))

	for _, v := range []int{1, 2, 3, 4} {
		tr.Fire(v)
	}
	assert.Equal(t, []int{2, 4}, *got)
}

func TestMap(t *testing.T) {
	rs := flow.NewReactiveSystem()
	tr := flow.NewTrigger[int](rs)
	got := record[string](flow.Pipe(tr, flow.Map(func(v int) string {
		return strings.Repeat("*", v)
	})))

	for _, v := range []int{1, 1, 3} {
		tr.Fire(v)
	}
	assert.Equal(t, []string{"*", "*", "***"}, *got)
}

func TestMerge(t *testing.T) {
	rs := flow.NewReactiveSystem()
	a := flow.NewTrigger[int](rs)
	b := flow.NewTrigger[int](rs)
	c := flow.NewCell(rs, 0)
	got := record[int](flow.Merge[int](a, b, c))

	a.Fire(1)
	b.Fire(2)
	c.Set(3)
	a.Fire(4)
	c.Set(3)
	assert.Equal(t, []int{1, 2, 3, 4}, *got)
}

func TestAccumulate(t *testing.T) {
	rs := flow.NewReactiveSystem()
	tr := flow.NewTrigger[int](rs)
	sum := flow.Pipe(tr, flow.Accumulate(0, func(acc, v int) int { return acc + v }))
	got := record[int](sum)

	for _, v := range []int{1, 2, 3} {
		tr.Fire(v)
	}
	assert.Equal(t, []int{1, 3, 6}, *got)
}

func TestCollect(t *testing.T) {
	rs := flow.NewReactiveSystem()
	tr := flow.NewTrigger[string](rs)
	got := record[[]string](flow.Pipe(tr, flow.Collect[string]()))

	tr.Fire("a")
	tr.Fire("b")
	assert.Equal(t, [][]string{{"a"}, {"a", "b"}}, *got)

	(*got)[0][0] = "z"
	assert.Equal(t, "a", (*got)[1][0], "every emission is a fresh slice")
}

func TestDistinct(t *testing.T) {
	rs := flow.NewReactiveSystem()
	tr := flow.NewTrigger[string](rs)
	got := record[string](flow.Pipe(tr, flow.Distinct(strings.ToLower)))

	for _, v := range []string{"Go", "go", "Rust", "GO", "rust", "Zig"} {
		tr.Fire(v)
	}
	assert.Equal(t, []string{"Go", "Rust", "Zig"}, *got)
}

func TestCombine(t *testing.T) {
	t.Run("barrier", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		a := flow.NewTrigger[int](rs)
		b := flow.NewTrigger[string](rs)
		got := record[flow.Tuple2[int, string]](flow.Combine2(a, b))

		a.Fire(1)
		a.Fire(2)
		assert.Empty(t, *got)

		b.Fire("x")
		require.Len(t, *got, 1)
		assert.Equal(t, flow.Tuple2[int, string]{V0: 2, V1: "x"}, (*got)[0])

		b.Fire("y")
		assert.Len(t, *got, 1, "slot 0 must be refreshed first")
		a.Fire(3)
		assert.Equal(t, []flow.Tuple2[int, string]{{2, "x"}, {3, "y"}}, *got)
	})

	t.Run("three and four", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		a := flow.NewTrigger[int](rs)
		b := flow.NewTrigger[bool](rs)
		c := flow.NewTrigger[string](rs)
		d := flow.NewTrigger[float64](rs)
		three := record[flow.Tuple3[int, bool, string]](flow.Combine3(a, b, c))
		four := record[flow.Tuple4[int, bool, string, float64]](flow.Combine4(a, b, c, d))

		a.Fire(1)
		b.Fire(true)
		c.Fire("c")
		assert.Equal(t, []flow.Tuple3[int, bool, string]{{1, true, "c"}}, *three)
		assert.Empty(t, *four)

		d.Fire(0.5)
		assert.Equal(t, []flow.Tuple4[int, bool, string, float64]{{1, true, "c", 0.5}}, *four)
	})

	t.Run("all", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		srcs := []flow.Source[int]{
			flow.NewTrigger[int](rs),
			flow.NewTrigger[int](rs),
			flow.NewTrigger[int](rs),
		}
		got := record[[]int](flow.CombineAll(srcs...))

		fire := func(i, v int) { srcs[i].(*flow.Trigger[int]).Fire(v) }
		fire(2, 30)
		fire(0, 10)
		fire(0, 11)
		fire(1, 20)
		fire(1, 21)
		fire(2, 31)
		fire(0, 12)
		assert.Equal(t, [][]int{{11, 20, 30}, {12, 21, 31}}, *got)
	})

	t.Run("same source twice", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		tr := flow.NewTrigger[int](rs)
		got := record[[]int](flow.CombineAll[int](tr, tr))
		tr.Fire(1)
		tr.Fire(2)
		assert.Equal(t, [][]int{{1, 1}, {2, 2}}, *got)
	})
}

func TestCompose(t *testing.T) {
	t.Run("pipe chain", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		tr := flow.NewTrigger[int](rs)
		squares := flow.Pipe(flow.Pipe(tr, flow.Filter(isEven)), flow.Map(func(v int) int { return v * v }))
		got := record[int](squares)
		for v := 1; v <= 4; v++ {
			tr.Fire(v)
		}
		assert.Equal(t, []int{4, 16}, *got)
		assert.Equal(t, 3, rs.Len())
	})

	t.Run("composed action", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		tr := flow.NewTrigger[int](rs)
		act := flow.Compose(
			flow.Filter(isEven),
			flow.Compose(
				flow.Map(func(v int) int { return v * v }),
				flow.Accumulate(0, func(acc, v int) int { return acc + v }),
			),
		)
		got := record[int](flow.Pipe(tr, act))
		for v := 1; v <= 4; v++ {
			tr.Fire(v)
		}
		assert.Equal(t, []int{4, 20}, *got)
		assert.Equal(t, 2, rs.Len())
	})

	t.Run("then fuses into one node", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		tr := flow.NewTrigger[int](rs)
		evens := flow.Pipe(tr, flow.Filter(isEven))
		squares := flow.Then(evens, flow.Map(func(v int) int { return v * v }))
		assert.Equal(t, 2, rs.Len())

		got := record[int](squares)
		for v := 1; v <= 4; v++ {
			tr.Fire(v)
		}
		assert.Equal(t, []int{4, 16}, *got)

		assert.PanicsWithValue(t, flow.ErrClosed, func() {
			flow.Then(evens, flow.Map(func(v int) int { return v }))
		})
	})
}

func TestRetain(t *testing.T) {
	rs := flow.NewReactiveSystem()
	tr := flow.NewTrigger[int](rs)
	last := flow.Retain(flow.Pipe(tr, flow.Filter(isEven)))
	assert.Equal(t, 0, last.Value())

	half := flow.Computed1(last, func(v int) int { return v / 2 })
	var got []int
	last.Connect(func(v int) { got = append(got, v) })

	tr.Fire(4)
	tr.Fire(5)
	tr.Fire(4)
	tr.Fire(8)
	assert.Equal(t, 8, last.Value())
	assert.Equal(t, 4, half.Value())
	assert.Equal(t, []int{4, 8}, got)

	sum := flow.Derive(flow.Add(last, flow.Const(1)))
	assert.Equal(t, 9, sum.Value())
}

func TestPropagatesPanics(t *testing.T) {
	rs := flow.NewReactiveSystem(flow.WithMaxDepth(4))
	tr := flow.NewTrigger[int](rs)
	var seen []int
	checked := flow.Pipe(tr, flow.Map(func(v int) int {
		if v < 0 {
			panic("negative")
		}
		return v
	}))
	sum := flow.Pipe(checked, flow.Accumulate(0, func(acc, v int) int { return acc + v }))
	sum.Connect(func(v int) { seen = append(seen, v) })

	tr.Fire(1)
	for i := 0; i < 10; i++ {
		assert.PanicsWithValue(t, "negative", func() { tr.Fire(-1) })
	}
	tr.Fire(2)
	assert.Equal(t, []int{1, 3}, seen)
}

func TestNilInterfaceValues(t *testing.T) {
	t.Run("pipe", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		tr := flow.NewTrigger[error](rs)
		messages := record[string](flow.Pipe(tr, flow.Map(func(err error) string {
			if err == nil {
				return "ok"
			}
			return err.Error()
		})))
		nils := record[error](flow.Pipe(tr, flow.Filter(func(err error) bool { return err == nil })))

		tr.Fire(nil)
		tr.Fire(errors.New("boom"))
		assert.Equal(t, []string{"ok", "boom"}, *messages)
		assert.Equal(t, []error{nil}, *nils)
	})

	t.Run("combine", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		a := flow.NewTrigger[any](rs)
		b := flow.NewTrigger[int](rs)
		got := record[flow.Tuple2[any, int]](flow.Combine2(a, b))

		a.Fire(nil)
		b.Fire(1)
		assert.Equal(t, []flow.Tuple2[any, int]{{nil, 1}}, *got)
	})

	t.Run("combine all", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		a := flow.NewTrigger[error](rs)
		b := flow.NewTrigger[error](rs)
		got := record[[]error](flow.CombineAll[error](a, b))

		a.Fire(nil)
		b.Fire(nil)
		assert.Equal(t, [][]error{{nil, nil}}, *got)
	})

	t.Run("retain", func(t *testing.T) {
		rs := flow.NewReactiveSystem()
		tr := flow.NewTrigger[any](rs)
		held := flow.Retain[any](tr)
		var got []any
		held.Connect(func(v any) { got = append(got, v) })

		tr.Fire(1)
		tr.Fire(nil)
		tr.Fire(nil)
		assert.Nil(t, held.Value())
		assert.Equal(t, []any{1, nil}, got)
	})
}
