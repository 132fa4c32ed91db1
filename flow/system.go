package flow

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/petermattis/goid"
)

// closer is implemented by every node core so the system can tear the whole
// graph down.
type closer interface {
	close()
}

// Stats counts propagation work done by a ReactiveSystem.
type Stats struct {
	Signals    uint64 // fan-outs started by a node
	Deliveries uint64 // sink invocations
	Recomputes uint64 // derived node re-evaluations
	Suppressed uint64 // writes or recomputes dropped by the equality gate
	Emissions  uint64 // values emitted by event actions
}

type Option func(*ReactiveSystem)

// WithMaxDepth bounds how deep a single write may recurse through the graph.
// Zero means unbounded.
func WithMaxDepth(depth int) Option {
	return func(rs *ReactiveSystem) {
		rs.maxDepth = depth
	}
}

// WithGoroutineAffinity pins the system to the goroutine that created it.
// Writes from any other goroutine panic with ErrWrongGoroutine.
func WithGoroutineAffinity() Option {
	return func(rs *ReactiveSystem) {
		rs.pinned = true
	}
}

// ReactiveSystem owns a graph of nodes. It is not safe for concurrent use;
// every write runs the whole propagation before returning.
type ReactiveSystem struct {
	nextID   uint64
	live     mapset.Set[closer]
	depth    int
	maxDepth int
	pinned   bool
	gid      int64
	stats    Stats
}

func NewReactiveSystem(opts ...Option) *ReactiveSystem {
	rs := &ReactiveSystem{
		live: mapset.NewThreadUnsafeSet[closer](),
	}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.pinned {
		rs.gid = goid.Get()
	}
	return rs
}

func (rs *ReactiveSystem) Stats() Stats {
	return rs.stats
}

// Len returns the number of nodes that have not been closed.
func (rs *ReactiveSystem) Len() int {
	return rs.live.Cardinality()
}

// Close closes every live node. Sinks connected from outside the graph are
// disconnected as well.
func (rs *ReactiveSystem) Close() {
	for _, c := range rs.live.ToSlice() {
		c.close()
	}
	rs.live.Clear()
}

func (rs *ReactiveSystem) register(c closer) uint64 {
	rs.nextID++
	rs.live.Add(c)
	return rs.nextID
}

func (rs *ReactiveSystem) unregister(c closer) {
	rs.live.Remove(c)
}

// checkWrite guards the entry points that start a propagation.
func (rs *ReactiveSystem) checkWrite() {
	if rs.pinned {
		if gid := goid.Get(); gid != rs.gid {
			panic(fmt.Errorf("%w: created on %d, written from %d", ErrWrongGoroutine, rs.gid, gid))
		}
	}
}

func (rs *ReactiveSystem) enter() {
	rs.depth++
	if rs.maxDepth > 0 && rs.depth > rs.maxDepth {
		panic(fmt.Errorf("%w: limit %d", ErrMaxDepth, rs.maxDepth))
	}
	rs.stats.Signals++
}

func (rs *ReactiveSystem) exit() {
	if rs.depth > 0 {
		rs.depth--
	}
}

// sameSystem returns the system shared by all nodes or panics.
func sameSystem(systems ...*ReactiveSystem) *ReactiveSystem {
	if len(systems) == 0 {
		panic(ErrNoSources)
	}
	rs := systems[0]
	for _, other := range systems[1:] {
		if other != rs {
			panic(ErrSystemMismatch)
		}
	}
	return rs
}
