package eff

// List execution. Both combinators run their elements strictly in order
// and stop at the first failure; effects already performed are not undone.
//
// Elements that complete on the current turn are driven by a flat loop,
// so very long lists of non-suspending computations hold constant stack.
// An element that suspends re-enters the driver when it resumes.

// Sequence runs each computation in order and collects the success values.
// An empty list succeeds with an empty slice.
func Sequence[E, A any](ms []IO[E, A]) IO[E, []A] {
	return func(ex Executor, k func(Result[E, []A])) {
		out := make([]A, 0, len(ms))
		var step func(i int)
		step = func(i int) {
			for i < len(ms) {
				var (
					resumedSync bool
					failed      bool
				)
				inCall := true
				ms[i](ex, func(r Result[E, A]) {
					a, ok := r.Success()
					if !ok {
						e, _ := r.Failure()
						k(Err[E, []A](e))
						failed = true
						resumedSync = true
						return
					}
					out = append(out, a)
					if inCall {
						resumedSync = true
						return
					}
					step(i + 1)
				})
				inCall = false
				if failed || !resumedSync {
					return
				}
				i++
			}
			k(Ok[E](out))
		}
		step(0)
	}
}

// Batch runs each computation in order, discarding all success values.
// An empty list succeeds immediately.
func Batch[E, A any](ms []IO[E, A]) IO[E, Unit] {
	return func(ex Executor, k func(Result[E, Unit])) {
		var step func(i int)
		step = func(i int) {
			for i < len(ms) {
				var (
					resumedSync bool
					failed      bool
				)
				inCall := true
				ms[i](ex, func(r Result[E, A]) {
					if e, isErr := r.Failure(); isErr {
						k(Err[E, Unit](e))
						failed = true
						resumedSync = true
						return
					}
					if inCall {
						resumedSync = true
						return
					}
					step(i + 1)
				})
				inCall = false
				if failed || !resumedSync {
					return
				}
				i++
			}
			k(Ok[E](UnitValue))
		}
		step(0)
	}
}
