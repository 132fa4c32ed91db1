package flow

import (
	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

type filter[T any] struct {
	pred func(T) bool
}

// Filter re-emits the values for which pred holds and drops the rest.
func Filter[T any](pred func(T) bool) Action[T, T] {
	return &filter[T]{pred: pred}
}

func (f *filter[T]) Apply(emit func(T), _ int, in T) {
	if f.pred(in) {
		emit(in)
	}
}

func (f *filter[T]) Clone() Action[T, T] {
	return &filter[T]{pred: f.pred}
}

type mapper[I, O any] struct {
	fn func(I) O
}

// Map emits fn(x) for every incoming x.
func Map[I, O any](fn func(I) O) Action[I, O] {
	return &mapper[I, O]{fn: fn}
}

func (m *mapper[I, O]) Apply(emit func(O), _ int, in I) {
	emit(m.fn(in))
}

func (m *mapper[I, O]) Clone() Action[I, O] {
	return &mapper[I, O]{fn: m.fn}
}

type passthrough[T any] struct{}

func (passthrough[T]) Apply(emit func(T), _ int, in T) {
	emit(in)
}

func (p passthrough[T]) Clone() Action[T, T] {
	return p
}

// Merge interleaves everything its sources signal, in arrival order.
func Merge[T any](srcs ...Source[T]) *Event[T] {
	return newEvent[T](typed[T, T]{act: passthrough[T]{}}, ports(srcs))
}

// accumulator folds every incoming value into acc and emits the new acc.
type accumulator[T, A any] struct {
	acc A
	op  func(A, T) A
}

func Accumulate[T, A any](init A, op func(A, T) A) Action[T, A] {
	return &accumulator[T, A]{acc: init, op: op}
}

func (a *accumulator[T, A]) Apply(emit func(A), _ int, in T) {
	a.acc = a.op(a.acc, in)
	emit(a.acc)
}

func (a *accumulator[T, A]) Clone() Action[T, A] {
	return &accumulator[T, A]{acc: a.acc, op: a.op}
}

// collector keeps everything seen so far.
type collector[T any] struct {
	items []T
}

// Collect emits, for every incoming value, a fresh slice of all values
// received so far.
func Collect[T any]() Action[T, []T] {
	return &collector[T]{}
}

func (c *collector[T]) Apply(emit func([]T), _ int, in T) {
	c.items = append(c.items, in)
	out := make([]T, len(c.items))
	copy(out, c.items)
	emit(out)
}

func (c *collector[T]) Clone() Action[T, []T] {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return &collector[T]{items: items}
}

type distinct[T any] struct {
	key  func(T) string
	seen mapset.Set[uint64]
}

// Distinct emits a value only the first time its key is seen. Keys are
// remembered by their 64-bit xxhash digest.
func Distinct[T any](key func(T) string) Action[T, T] {
	return &distinct[T]{key: key, seen: mapset.NewThreadUnsafeSet[uint64]()}
}

func (d *distinct[T]) Apply(emit func(T), _ int, in T) {
	if d.seen.Add(xxhash.Sum64String(d.key(in))) {
		emit(in)
	}
}

func (d *distinct[T]) Clone() Action[T, T] {
	return &distinct[T]{key: d.key, seen: d.seen.Clone()}
}
