package flow

// Expr is an unevaluated function over a list of sources. Combining
// expressions concatenates their sources, so a whole expression tree becomes
// a single derived node.
type Expr[T any] struct {
	eval func() T
	ups  []upstream
}

// Operand is anything that can take part in an expression.
type Operand[T any] interface {
	expr() Expr[T]
}

// Of reads r as a single-source expression.
func Of[T any](r Readable[T]) Expr[T] {
	return Expr[T]{eval: r.reader(), ups: []upstream{r.port()}}
}

// Const lifts a plain value into an expression with no sources.
func Const[T any](v T) Expr[T] {
	return Expr[T]{eval: func() T { return v }}
}

func Apply[I, O any](e Expr[I], fn func(I) O) Expr[O] {
	eval := e.eval
	return Expr[O]{
		eval: func() O { return fn(eval()) },
		ups:  e.ups,
	}
}

// Apply2 combines two expressions. The sources of a come first.
func Apply2[A, B, O any](a Expr[A], b Expr[B], fn func(A, B) O) Expr[O] {
	evalA, evalB := a.eval, b.eval
	ups := make([]upstream, 0, len(a.ups)+len(b.ups))
	ups = append(ups, a.ups...)
	ups = append(ups, b.ups...)
	return Expr[O]{
		eval: func() O { return fn(evalA(), evalB()) },
		ups:  ups,
	}
}

func (e Expr[T]) expr() Expr[T] {
	return e
}

// Len returns the number of source connections the expression will need.
func (e Expr[T]) Len() int {
	return len(e.ups)
}
