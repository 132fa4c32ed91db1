package flow

// combiner is the rendezvous behind Combine: it caches the latest value per
// source slot and emits once every slot has been filled, then starts over.
type combiner[O any] struct {
	slots     []any
	filled    []bool
	remaining int
	build     func(slots []any) O
}

func newCombiner[O any](n int, build func(slots []any) O) *combiner[O] {
	return &combiner[O]{
		slots:     make([]any, n),
		filled:    make([]bool, n),
		remaining: n,
		build:     build,
	}
}

func (c *combiner[O]) apply(emit func(O), index int, in any) {
	if !c.filled[index] {
		c.filled[index] = true
		c.remaining--
	}
	c.slots[index] = in
	if c.remaining > 0 {
		return
	}
	emit(c.build(c.slots))
	c.reset()
}

func (c *combiner[O]) reset() {
	clear(c.slots)
	clear(c.filled)
	c.remaining = len(c.slots)
}

func (c *combiner[O]) clone() erased[O] {
	clone := newCombiner(len(c.slots), c.build)
	copy(clone.slots, c.slots)
	copy(clone.filled, c.filled)
	clone.remaining = c.remaining
	return clone
}

func (c *combiner[O]) bind(*ReactiveSystem) {}

// CombineAll waits until every source has signalled and emits their latest
// values in source order.
func CombineAll[T any](srcs ...Source[T]) *Event[[]T] {
	build := func(slots []any) []T {
		out := make([]T, len(slots))
		for i, v := range slots {
			out[i] = valueOf[T](v)
		}
		return out
	}
	return newEvent[[]T](newCombiner(len(srcs), build), ports(srcs))
}
