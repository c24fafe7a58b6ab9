package eff

// Applicative composition. All arguments are evaluated sequentially left
// to right; this is observable when arguments perform effects.

// AndMap runs mf to obtain a function, then ma to obtain its argument,
// and applies one to the other.
func AndMap[E, A, B any](mf IO[E, func(A) B], ma IO[E, A]) IO[E, B] {
	return AndThen(mf, func(f func(A) B) IO[E, B] {
		return Map(ma, f)
	})
}

// Map2 lifts a binary function over two computations.
func Map2[E, A, B, C any](f func(A, B) C, ma IO[E, A], mb IO[E, B]) IO[E, C] {
	return AndThen(ma, func(a A) IO[E, C] {
		return Map(mb, func(b B) C { return f(a, b) })
	})
}

// Map3 lifts a ternary function over three computations.
func Map3[E, A, B, C, D any](f func(A, B, C) D, ma IO[E, A], mb IO[E, B], mc IO[E, C]) IO[E, D] {
	return AndThen(ma, func(a A) IO[E, D] {
		return Map2(func(b B, c C) D { return f(a, b, c) }, mb, mc)
	})
}

// Map4 lifts a quaternary function over four computations.
func Map4[E, A, B, C, D, R any](f func(A, B, C, D) R, ma IO[E, A], mb IO[E, B], mc IO[E, C], md IO[E, D]) IO[E, R] {
	return AndThen(ma, func(a A) IO[E, R] {
		return Map3(func(b B, c C, d D) R { return f(a, b, c, d) }, mb, mc, md)
	})
}
