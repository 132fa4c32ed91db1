package flow

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

func Add[T Number](a, b Operand[T]) Expr[T] {
	return Apply2(a.expr(), b.expr(), func(x, y T) T { return x + y })
}

func Sub[T Number](a, b Operand[T]) Expr[T] {
	return Apply2(a.expr(), b.expr(), func(x, y T) T { return x - y })
}

func Mul[T Number](a, b Operand[T]) Expr[T] {
	return Apply2(a.expr(), b.expr(), func(x, y T) T { return x * y })
}

// Div panics on integer division by zero, like the operator it lifts.
func Div[T Number](a, b Operand[T]) Expr[T] {
	return Apply2(a.expr(), b.expr(), func(x, y T) T { return x / y })
}

func Neg[T Number](a Operand[T]) Expr[T] {
	return Apply(a.expr(), func(x T) T { return -x })
}

func Plus[T Number](a Operand[T]) Expr[T] {
	return Apply(a.expr(), func(x T) T { return +x })
}
