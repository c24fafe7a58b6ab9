package eff

// Sequencing and error-handling combinators.
//
// AndThen is the minimal sequencing operation. Map is implemented directly
// to avoid an intermediate closure; Then and Keep are built on AndThen.

// AndThen runs m and, on success, feeds its value to f. A failure skips f
// and short-circuits with the error unchanged.
func AndThen[E, A, B any](m IO[E, A], f func(A) IO[E, B]) IO[E, B] {
	return func(ex Executor, k func(Result[E, B])) {
		m(ex, func(r Result[E, A]) {
			a, ok := r.Success()
			if !ok {
				e, _ := r.Failure()
				k(Err[E, B](e))
				return
			}
			f(a)(ex, k)
		})
	}
}

// Map applies a pure function to the success value. Errors pass through
// unchanged.
func Map[E, A, B any](m IO[E, A], f func(A) B) IO[E, B] {
	return func(ex Executor, k func(Result[E, B])) {
		m(ex, func(r Result[E, A]) {
			k(MapResult(r, f))
		})
	}
}

// Recover runs m and, on failure, feeds the error to h. A success passes
// through without running h. The error type of the resulting computation
// is independent of E: recovery removes the original error channel by
// construction.
func Recover[E, F, A any](m IO[E, A], h func(E) IO[F, A]) IO[F, A] {
	return func(ex Executor, k func(Result[F, A])) {
		m(ex, func(r Result[E, A]) {
			e, failed := r.Failure()
			if !failed {
				a, _ := r.Success()
				k(Ok[F](a))
				return
			}
			h(e)(ex, k)
		})
	}
}

// MapError applies a pure function to the error channel. Successes pass
// through unchanged.
func MapError[E, F, A any](m IO[E, A], f func(E) F) IO[F, A] {
	return func(ex Executor, k func(Result[F, A])) {
		m(ex, func(r Result[E, A]) {
			k(MapErrResult(r, f))
		})
	}
}

// Then runs m, discards its value, then runs n. The first failure wins.
func Then[E, A, B any](m IO[E, A], n IO[E, B]) IO[E, B] {
	return AndThen(m, func(A) IO[E, B] { return n })
}

// Keep runs m, then runs n, and keeps m's value. The first failure wins.
func Keep[E, A, B any](m IO[E, A], n IO[E, B]) IO[E, A] {
	return AndThen(m, func(a A) IO[E, A] {
		return Map(n, func(B) A { return a })
	})
}
