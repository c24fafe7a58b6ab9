package actor

import (
	"github.com/codewandler/actio-go/core/eff"
)

// Future is a single-use handle to the outcome of an asynchronous
// computation. Await it at most once.
type Future[E, A any] struct {
	in *Inbox[eff.Result[E, A]]
}

// Async starts m on a later turn and returns a future for its outcome
// immediately. The current process keeps running; the outcome is parked
// in the future until awaited.
func Async[E, A any](m eff.IO[E, A]) eff.IO[E, Future[E, A]] {
	return func(ex eff.Executor, k func(eff.Result[E, Future[E, A]])) {
		f := Future[E, A]{in: NewInbox[eff.Result[E, A]]()}
		body := func(_ *Inbox[eff.Unit]) eff.IO[E, A] { return m }
		Spawn(body, f.in.Address())(ex, func(r eff.Result[E, Address[eff.Unit]]) {
			if e, failed := r.Failure(); failed {
				k(eff.Err[E, Future[E, A]](e))
				return
			}
			k(eff.Ok[E](f))
		})
	}
}

// Await suspends until the future's computation has terminated and
// propagates its outcome: the awaiting process resumes with the success
// value or fails with the computation's error.
func Await[E, A any](f Future[E, A]) eff.IO[E, A] {
	return eff.AndThen(Receive[E](f.in), eff.FromResult[E, A])
}

// Spawned pairs the address of a spawned process with a future for its
// terminal result.
type Spawned[E, A, M any] struct {
	Addr   Address[M]
	Future Future[E, A]
}

// SpawnAsync spawns body like [Spawn] but captures the outcome in a
// future instead of requiring an on-exit address.
func SpawnAsync[E, A, M any](body func(in *Inbox[M]) eff.IO[E, A]) eff.IO[E, Spawned[E, A, M]] {
	return func(ex eff.Executor, k func(eff.Result[E, Spawned[E, A, M]])) {
		f := Future[E, A]{in: NewInbox[eff.Result[E, A]]()}
		Spawn(body, f.in.Address())(ex, func(r eff.Result[E, Address[M]]) {
			if e, failed := r.Failure(); failed {
				k(eff.Err[E, Spawned[E, A, M]](e))
				return
			}
			addr, _ := r.Success()
			k(eff.Ok[E](Spawned[E, A, M]{Addr: addr, Future: f}))
		})
	}
}
