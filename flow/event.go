package flow

// Event is a node with no current value: it re-emits whatever its action
// decides to emit for each value arriving from its sources.
type Event[T any] struct {
	core *eventCore[T]
}

type eventCore[T any] struct {
	node[T]
	srcs sources
	act  erased[T]
	emit func(T)
}

func newEvent[T any](act erased[T], ups []upstream) *Event[T] {
	rs := bindSystem(ups)
	return &Event[T]{core: newEventCore(rs, act, ups)}
}

func newEventCore[T any](rs *ReactiveSystem, act erased[T], ups []upstream) *eventCore[T] {
	e := &eventCore[T]{act: act}
	e.rs = rs
	e.id = rs.register(e)
	e.emit = e.push
	if act != nil {
		act.bind(rs)
	}
	e.srcs.rebind(ups, e.onSource)
	return e
}

func (e *eventCore[T]) onSource(index int, v any) {
	e.act.apply(e.emit, index, v)
}

func (e *eventCore[T]) push(v T) {
	e.rs.stats.Emissions++
	e.signal(v)
}

func (e *eventCore[T]) close() {
	if e.closed {
		return
	}
	e.closed = true
	e.srcs.disconnect()
	e.disconnectAll()
	e.rs.unregister(e)
}

// Pipe builds an event node that runs act over everything src signals.
func Pipe[I, O any](src Source[I], act Action[I, O]) *Event[O] {
	return newEvent[O](typed[I, O]{act: act}, []upstream{src.port()})
}

// Then consumes e and returns a node that runs e's action followed by act,
// connected directly to e's sources. e is closed.
func Then[M, O any](e *Event[M], act Action[M, O]) *Event[O] {
	core := e.core
	if core.closed {
		panic(ErrClosed)
	}
	if core.act == nil {
		// A stream fed from inside the graph has nothing to fuse with.
		return Pipe[M, O](e, act)
	}
	ups := core.srcs.upstreams()
	first := core.act
	core.close()
	return newEvent[O](fused[M, O]{first: first, then: act}, ups)
}

func (e *Event[T]) Connect(fn func(T)) *Connection {
	return e.core.connect(fn)
}

// Clone returns a node over the same sources with an independent copy of the
// action state and no subscribers.
func (e *Event[T]) Clone() *Event[T] {
	core := e.core
	if core.closed {
		panic(ErrClosed)
	}
	var act erased[T]
	if core.act != nil {
		act = core.act.clone()
	}
	return &Event[T]{core: newEventCore(core.rs, act, core.srcs.upstreams())}
}

// Assign makes e run a copy of other's action over other's sources, keeping
// e's subscribers.
func (e *Event[T]) Assign(other *Event[T]) {
	if e == other || e.core == other.core {
		return
	}
	if other.core.closed {
		panic(ErrClosed)
	}
	sameSystem(e.core.rs, other.core.rs)
	core := e.core
	core.srcs.disconnect()
	if other.core.act != nil {
		core.act = other.core.act.clone()
		core.act.bind(core.rs)
	} else {
		core.act = nil
	}
	core.srcs.rebind(other.core.srcs.upstreams(), core.onSource)
}

func (e *Event[T]) Swap(other *Event[T]) {
	if e == other {
		return
	}
	e.core, other.core = other.core, e.core
}

func (e *Event[T]) Close() {
	e.core.close()
}

func (e *Event[T]) port() *node[T] {
	return &e.core.node
}
