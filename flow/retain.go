package flow

// Hold gives an event stream a current value: the latest value it emitted,
// starting from the zero value. Like a Cell, equal values are not signalled.
type Hold[T any] struct {
	core *holdCore[T]
}

type holdCore[T any] struct {
	node[T]
	srcs  sources
	value T
	equal func(a, b T) bool
}

func Retain[T any](src Source[T]) *Hold[T] {
	var zero T
	ups := []upstream{src.port()}
	return &Hold[T]{core: newHoldCore(bindSystem(ups), zero, ups, defaultEqual[T])}
}

func newHoldCore[T any](rs *ReactiveSystem, initial T, ups []upstream, equal func(a, b T) bool) *holdCore[T] {
	h := &holdCore[T]{value: initial, equal: equal}
	h.rs = rs
	h.id = rs.register(h)
	h.srcs.rebind(ups, h.onSource)
	return h
}

func (h *holdCore[T]) onSource(_ int, v any) {
	in := valueOf[T](v)
	if h.equal(h.value, in) {
		h.rs.stats.Suppressed++
		return
	}
	h.value = in
	h.signal(in)
}

func (h *holdCore[T]) get() T {
	return h.value
}

func (h *holdCore[T]) close() {
	if h.closed {
		return
	}
	h.closed = true
	h.srcs.disconnect()
	h.disconnectAll()
	h.rs.unregister(h)
}

func (h *Hold[T]) Value() T {
	return h.core.value
}

func (h *Hold[T]) WithEquals(fn func(a, b T) bool) *Hold[T] {
	h.core.equal = fn
	return h
}

func (h *Hold[T]) Connect(fn func(T)) *Connection {
	return h.core.connect(fn)
}

// Clone returns a hold on the same stream, starting from the current value.
func (h *Hold[T]) Clone() *Hold[T] {
	core := h.core
	if core.closed {
		panic(ErrClosed)
	}
	return &Hold[T]{core: newHoldCore(core.rs, core.value, core.srcs.upstreams(), core.equal)}
}

func (h *Hold[T]) Swap(other *Hold[T]) {
	if h == other {
		return
	}
	h.core, other.core = other.core, h.core
}

func (h *Hold[T]) Close() {
	h.core.close()
}

func (h *Hold[T]) port() *node[T] {
	return &h.core.node
}

func (h *Hold[T]) reader() func() T {
	return h.core.get
}

func (h *Hold[T]) expr() Expr[T] {
	return Of[T](h)
}
