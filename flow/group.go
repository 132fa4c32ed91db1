package flow

// Group is the sub-stream of one key produced by GroupBy.
type Group[K comparable, T any] struct {
	Key K
	*Event[T]
}

type grouper[K comparable, T any] struct {
	key    func(T) K
	rs     *ReactiveSystem
	groups map[K]*eventCore[T]
}

// GroupBy splits a stream by key. The first value of every new key emits a
// new Group before the value itself is forwarded into that group, so anything
// connected to the group while handling the emission sees the value.
func GroupBy[T any, K comparable](key func(T) K) Action[T, *Group[K, T]] {
	return &grouper[K, T]{key: key, groups: map[K]*eventCore[T]{}}
}

func (g *grouper[K, T]) bind(rs *ReactiveSystem) {
	g.rs = rs
}

func (g *grouper[K, T]) Apply(emit func(*Group[K, T]), _ int, in T) {
	k := g.key(in)
	stream, ok := g.groups[k]
	if !ok {
		stream = newEventCore[T](g.rs, nil, nil)
		g.groups[k] = stream
		emit(&Group[K, T]{Key: k, Event: &Event[T]{core: stream}})
	}
	stream.push(in)
}

// Clone starts with no groups: the copy emits its own Group for every key,
// so values are never forwarded into one stream by both nodes.
func (g *grouper[K, T]) Clone() Action[T, *Group[K, T]] {
	return &grouper[K, T]{key: g.key, rs: g.rs, groups: map[K]*eventCore[T]{}}
}
