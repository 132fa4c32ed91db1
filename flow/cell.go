package flow

// Cell is a mutable source value. Writes that compare equal to the current
// value are dropped without notifying anyone.
type Cell[T any] struct {
	core *cellCore[T]
}

type cellCore[T any] struct {
	node[T]
	value T
	equal func(a, b T) bool
}

func NewCell[T any](rs *ReactiveSystem, initial T) *Cell[T] {
	return &Cell[T]{core: newCellCore(rs, initial, defaultEqual[T])}
}

func newCellCore[T any](rs *ReactiveSystem, initial T, equal func(a, b T) bool) *cellCore[T] {
	c := &cellCore[T]{value: initial, equal: equal}
	c.rs = rs
	c.id = rs.register(c)
	return c
}

func (c *cellCore[T]) get() T {
	return c.value
}

func (c *cellCore[T]) set(v T) {
	if c.equal(c.value, v) {
		c.rs.stats.Suppressed++
		return
	}
	c.value = v
	c.signal(v)
}

func (c *cellCore[T]) close() {
	if c.closed {
		return
	}
	c.closed = true
	c.disconnectAll()
	c.rs.unregister(c)
}

func (c *Cell[T]) Value() T {
	return c.core.value
}

// Set stores v and propagates it through the graph before returning.
func (c *Cell[T]) Set(v T) {
	c.core.rs.checkWrite()
	c.core.set(v)
}

// Update sets the cell to fn applied to its current value.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.core.value))
}

// WithEquals replaces the equality used to gate writes.
func (c *Cell[T]) WithEquals(fn func(a, b T) bool) *Cell[T] {
	c.core.equal = fn
	return c
}

func (c *Cell[T]) Connect(fn func(T)) *Connection {
	return c.core.connect(fn)
}

// Clone returns a new cell holding the same value, with no subscribers.
func (c *Cell[T]) Clone() *Cell[T] {
	return &Cell[T]{core: newCellCore(c.core.rs, c.core.value, c.core.equal)}
}

// Assign copies other's value into c. Subscribers of c are kept and notified
// if the value changes.
func (c *Cell[T]) Assign(other *Cell[T]) {
	if c == other || c.core == other.core {
		return
	}
	c.Set(other.core.value)
}

// Swap exchanges the two cells. Dependents follow the value they were
// connected to.
func (c *Cell[T]) Swap(other *Cell[T]) {
	if c == other {
		return
	}
	c.core, other.core = other.core, c.core
}

// Close disconnects every dependent and releases the cell.
func (c *Cell[T]) Close() {
	c.core.close()
}

func (c *Cell[T]) port() *node[T] {
	return &c.core.node
}

func (c *Cell[T]) reader() func() T {
	return c.core.get
}

func (c *Cell[T]) expr() Expr[T] {
	return Of[T](c)
}
