package flow

// Action is the per-node transform of an event node. Apply is called once per
// incoming value with the index of the source that produced it, and may call
// emit any number of times. Implementations keep their state in their own
// fields; Clone returns an independent copy of that state.
type Action[I, O any] interface {
	Apply(emit func(O), index int, in I)
	Clone() Action[I, O]
}

// binder is implemented by actions that create nodes of their own.
type binder interface {
	bind(rs *ReactiveSystem)
}

// Compose chains two actions: everything first emits is fed to then, with the
// source index fixed to 0.
func Compose[I, M, O any](first Action[I, M], then Action[M, O]) Action[I, O] {
	return &composed[I, M, O]{first: first, then: then}
}

type composed[I, M, O any] struct {
	first Action[I, M]
	then  Action[M, O]
}

func (c *composed[I, M, O]) Apply(emit func(O), index int, in I) {
	c.first.Apply(func(m M) { c.then.Apply(emit, 0, m) }, index, in)
}

func (c *composed[I, M, O]) Clone() Action[I, O] {
	return &composed[I, M, O]{first: c.first.Clone(), then: c.then.Clone()}
}

func (c *composed[I, M, O]) bind(rs *ReactiveSystem) {
	bindAction(c.first, rs)
	bindAction(c.then, rs)
}

func bindAction(act any, rs *ReactiveSystem) {
	if b, ok := act.(binder); ok {
		b.bind(rs)
	}
}

// erased is an action whose input type has been hidden so that one event
// core can serve sources of different types.
type erased[O any] interface {
	apply(emit func(O), index int, in any)
	clone() erased[O]
	bind(rs *ReactiveSystem)
}

// valueOf recovers a T from its erased form. A nil interface value comes
// back as the zero T, which is how nil travels when T is itself an interface.
func valueOf[T any](v any) T {
	t, _ := v.(T)
	return t
}

type typed[I, O any] struct {
	act Action[I, O]
}

func (t typed[I, O]) apply(emit func(O), index int, in any) {
	t.act.Apply(emit, index, valueOf[I](in))
}

func (t typed[I, O]) clone() erased[O] {
	return typed[I, O]{act: t.act.Clone()}
}

func (t typed[I, O]) bind(rs *ReactiveSystem) {
	bindAction(t.act, rs)
}

// fused runs an erased action and feeds its output to a typed one.
type fused[M, O any] struct {
	first erased[M]
	then  Action[M, O]
}

func (f fused[M, O]) apply(emit func(O), index int, in any) {
	f.first.apply(func(m M) { f.then.Apply(emit, 0, m) }, index, in)
}

func (f fused[M, O]) clone() erased[O] {
	return fused[M, O]{first: f.first.clone(), then: f.then.Clone()}
}

func (f fused[M, O]) bind(rs *ReactiveSystem) {
	f.first.bind(rs)
	bindAction(f.then, rs)
}
