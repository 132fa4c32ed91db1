package flow

// Trigger is a pure event source. Every Fire reaches the subscribers; nothing
// is stored.
type Trigger[T any] struct {
	core *triggerCore[T]
}

type triggerCore[T any] struct {
	node[T]
}

func NewTrigger[T any](rs *ReactiveSystem) *Trigger[T] {
	return &Trigger[T]{core: newTriggerCore[T](rs)}
}

func newTriggerCore[T any](rs *ReactiveSystem) *triggerCore[T] {
	t := &triggerCore[T]{}
	t.rs = rs
	t.id = rs.register(t)
	return t
}

func (t *triggerCore[T]) close() {
	if t.closed {
		return
	}
	t.closed = true
	t.disconnectAll()
	t.rs.unregister(t)
}

// Fire signals v to every subscriber, whether or not it equals the last value.
func (t *Trigger[T]) Fire(v T) {
	t.core.rs.checkWrite()
	t.core.signal(v)
}

func (t *Trigger[T]) Connect(fn func(T)) *Connection {
	return t.core.connect(fn)
}

// Clone returns a new trigger with no subscribers.
func (t *Trigger[T]) Clone() *Trigger[T] {
	return NewTrigger[T](t.core.rs)
}

func (t *Trigger[T]) Swap(other *Trigger[T]) {
	if t == other {
		return
	}
	t.core, other.core = other.core, t.core
}

func (t *Trigger[T]) Close() {
	t.core.close()
}

func (t *Trigger[T]) port() *node[T] {
	return &t.core.node
}
