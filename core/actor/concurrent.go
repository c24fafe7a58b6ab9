package actor

import (
	"github.com/codewandler/actio-go/core/eff"
)

// Concurrent runs every computation in ms at the same time and collects
// their results in input order. All computations are started before any
// is awaited, so they interleave at suspension points.
//
// The first failure in input order becomes the failure of the whole;
// later computations still run to completion in the background, their
// results discarded.
func Concurrent[E, A any](ms []eff.IO[E, A]) eff.IO[E, []A] {
	return func(ex eff.Executor, k func(eff.Result[E, []A])) {
		futures := make([]Future[E, A], len(ms))
		for i, m := range ms {
			// Async resumes synchronously, so the future is captured
			// before the next computation starts.
			Async(m)(ex, func(r eff.Result[E, Future[E, A]]) {
				f, _ := r.Success()
				futures[i] = f
			})
		}

		out := make([]A, 0, len(futures))
		var step func(i int)
		step = func(i int) {
			for i < len(futures) {
				var (
					resumedSync bool
					failed      bool
				)
				inCall := true
				Await(futures[i])(ex, func(r eff.Result[E, A]) {
					if e, isErr := r.Failure(); isErr {
						k(eff.Err[E, []A](e))
						failed = true
						resumedSync = true
						return
					}
					v, _ := r.Success()
					out = append(out, v)
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
			k(eff.Ok[E](out))
		}
		step(0)
	}
}
