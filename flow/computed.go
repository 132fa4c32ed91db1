package flow

// Computed is a derived node: a pure function over the current values of its
// sources. Any source change recomputes the whole function and the result is
// signalled only when it differs from the cached value.
type Computed[T any] struct {
	core *computedCore[T]
}

type computedCore[T any] struct {
	node[T]
	srcs  sources
	eval  func() T
	value T
	equal func(a, b T) bool
}

func newComputed[T any](e Expr[T]) *Computed[T] {
	rs := bindSystem(e.ups)
	return &Computed[T]{core: newComputedCore(rs, e.eval, e.ups, defaultEqual[T])}
}

func newComputedCore[T any](rs *ReactiveSystem, eval func() T, ups []upstream, equal func(a, b T) bool) *computedCore[T] {
	c := &computedCore[T]{eval: eval, equal: equal}
	c.rs = rs
	c.id = rs.register(c)
	c.value = eval()
	c.srcs.rebind(ups, c.onSource)
	return c
}

func (c *computedCore[T]) onSource(int, any) {
	c.update()
}

func (c *computedCore[T]) update() {
	c.rs.stats.Recomputes++
	v := c.eval()
	if c.equal(c.value, v) {
		c.rs.stats.Suppressed++
		return
	}
	c.value = v
	c.signal(v)
}

func (c *computedCore[T]) get() T {
	return c.value
}

func (c *computedCore[T]) close() {
	if c.closed {
		return
	}
	c.closed = true
	c.srcs.disconnect()
	c.disconnectAll()
	c.rs.unregister(c)
}

// Derive builds a derived node from an expression. The expression is
// evaluated once immediately to seed the cached value.
func Derive[T any](e Expr[T]) *Computed[T] {
	return newComputed(e)
}

// Fuse consumes c and returns a single node computing fn over c's function,
// connected directly to c's sources. c is closed.
func Fuse[I, O any](c *Computed[I], fn func(I) O) *Computed[O] {
	return newComputed(Apply(Unwrap(c), fn))
}

// Fuse2 consumes a and b and returns one node over the concatenation of their
// sources. fn receives the results of the two original functions.
func Fuse2[A, B, O any](a *Computed[A], b *Computed[B], fn func(A, B) O) *Computed[O] {
	return newComputed(Apply2(Unwrap(a), Unwrap(b), fn))
}

// Unwrap consumes c and returns its function and sources as an expression.
func Unwrap[T any](c *Computed[T]) Expr[T] {
	core := c.core
	if core.closed {
		panic(ErrClosed)
	}
	e := Expr[T]{eval: core.eval, ups: core.srcs.upstreams()}
	core.close()
	return e
}

func (c *Computed[T]) Value() T {
	return c.core.value
}

func (c *Computed[T]) WithEquals(fn func(a, b T) bool) *Computed[T] {
	c.core.equal = fn
	return c
}

func (c *Computed[T]) Connect(fn func(T)) *Connection {
	return c.core.connect(fn)
}

// Clone returns a node with the same function and sources and no subscribers.
func (c *Computed[T]) Clone() *Computed[T] {
	core := c.core
	if core.closed {
		panic(ErrClosed)
	}
	clone := newComputedCore(core.rs, core.eval, core.srcs.upstreams(), core.equal)
	return &Computed[T]{core: clone}
}

// Assign makes c compute other's function over other's sources. c keeps its
// own subscribers and notifies them if the recomputed value differs.
func (c *Computed[T]) Assign(other *Computed[T]) {
	if c == other || c.core == other.core {
		return
	}
	if other.core.closed {
		panic(ErrClosed)
	}
	sameSystem(c.core.rs, other.core.rs)
	core := c.core
	core.eval = other.core.eval
	core.srcs.rebind(other.core.srcs.upstreams(), core.onSource)
	core.update()
}

// Swap exchanges the two nodes. Dependents follow the node they connected to.
func (c *Computed[T]) Swap(other *Computed[T]) {
	if c == other {
		return
	}
	c.core, other.core = other.core, c.core
}

// Close releases the source connections and disconnects all dependents.
func (c *Computed[T]) Close() {
	c.core.close()
}

func (c *Computed[T]) port() *node[T] {
	return &c.core.node
}

func (c *Computed[T]) reader() func() T {
	return c.core.get
}

func (c *Computed[T]) expr() Expr[T] {
	return Of[T](c)
}
