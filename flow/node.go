package flow

import "slices"

// Source is any node that signals values of type T to its subscribers.
type Source[T any] interface {
	// Connect registers fn for every value the node signals. fn is not passed
	// the node: handles never move, so a sink that needs it closes over it.
	Connect(fn func(T)) *Connection
	port() *node[T]
}

// Readable is a Source that also holds a current value.
type Readable[T any] interface {
	Source[T]
	Value() T
	reader() func() T
}

// Connection is returned by Connect and releases the subscription.
type Connection struct {
	drop      func()
	connected bool
}

// Disconnect removes the subscription. It is safe to call more than once and
// takes effect immediately, even in the middle of a propagation.
func (c *Connection) Disconnect() {
	if c == nil || !c.connected {
		return
	}
	c.connected = false
	if c.drop != nil {
		c.drop()
	}
}

func (c *Connection) Connected() bool {
	return c != nil && c.connected
}

type subscription[T any] struct {
	fn   func(T)
	conn *Connection
}

// node is the subscriber half shared by every core. Cores are only ever
// referenced through pointers, so a node's identity never changes once its
// dependents have connected.
type node[T any] struct {
	rs     *ReactiveSystem
	id     uint64
	subs   []*subscription[T]
	closed bool
}

func (n *node[T]) connect(fn func(T)) *Connection {
	sub := &subscription[T]{fn: fn}
	sub.conn = &Connection{connected: !n.closed}
	if n.closed {
		return sub.conn
	}
	sub.conn.drop = func() { n.remove(sub) }
	n.subs = append(n.subs, sub)
	return sub.conn
}

func (n *node[T]) remove(sub *subscription[T]) {
	if i := slices.Index(n.subs, sub); i >= 0 {
		n.subs = slices.Delete(n.subs, i, i+1)
	}
}

// signal delivers v to every subscriber connected when the fan-out starts, in
// connection order. Subscribers dropped during the fan-out are skipped.
func (n *node[T]) signal(v T) {
	if len(n.subs) == 0 {
		return
	}
	rs := n.rs
	defer rs.exit()
	rs.enter()

	subs := make([]*subscription[T], len(n.subs))
	copy(subs, n.subs)
	for _, sub := range subs {
		if !sub.conn.connected {
			continue
		}
		rs.stats.Deliveries++
		sub.fn(v)
	}
}

func (n *node[T]) disconnectAll() {
	for _, sub := range n.subs {
		sub.conn.connected = false
	}
	n.subs = nil
}

func (n *node[T]) system() *ReactiveSystem {
	return n.rs
}

func (n *node[T]) live() bool {
	return !n.closed
}

func (n *node[T]) attach(fn func(any)) *Connection {
	return n.connect(func(v T) { fn(v) })
}

// upstream is the type-erased view a dependent keeps of one of its sources.
type upstream interface {
	system() *ReactiveSystem
	live() bool
	attach(fn func(any)) *Connection
}

type sourceRef struct {
	up   upstream
	conn *Connection
}

// sources is the ordered list of upstream references of a dependent node.
type sources struct {
	refs []sourceRef
}

func (s *sources) connect(on func(index int, v any)) {
	for i := range s.refs {
		index := i
		s.refs[i].conn = s.refs[i].up.attach(func(v any) { on(index, v) })
	}
}

func (s *sources) disconnect() {
	for i := range s.refs {
		s.refs[i].conn.Disconnect()
		s.refs[i].conn = nil
	}
}

// rebind swaps the source list: old connections are released before the new
// handles are copied in and connected, so no stale callback can fire.
func (s *sources) rebind(ups []upstream, on func(index int, v any)) {
	s.disconnect()
	s.refs = make([]sourceRef, len(ups))
	for i, up := range ups {
		s.refs[i].up = up
	}
	s.connect(on)
}

func (s *sources) upstreams() []upstream {
	ups := make([]upstream, len(s.refs))
	for i, ref := range s.refs {
		ups[i] = ref.up
	}
	return ups
}

// bindSystem validates a source list and returns the system it belongs to.
func bindSystem(ups []upstream) *ReactiveSystem {
	if len(ups) == 0 {
		panic(ErrNoSources)
	}
	systems := make([]*ReactiveSystem, len(ups))
	for i, up := range ups {
		if !up.live() {
			panic(ErrClosed)
		}
		systems[i] = up.system()
	}
	return sameSystem(systems...)
}

func ports[T any](srcs []Source[T]) []upstream {
	ups := make([]upstream, len(srcs))
	for i, src := range srcs {
		ups[i] = src.port()
	}
	return ups
}
