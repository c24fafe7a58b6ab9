package actor

import (
	"github.com/codewandler/actio-go/core/eff"
)

// SpawnWorker spawns a process that receives messages forever and runs
// fn on each one. The worker never succeeds; its only exit is a failure
// from fn, which is forwarded to onExit.
//
// The loop re-enters the scheduler between messages, so a worker flooded
// with queued messages still yields to its peers.
func SpawnWorker[E, M any](fn func(msg M) eff.IO[E, eff.Unit], onExit Address[eff.Result[E, eff.Unit]]) eff.IO[E, Address[M]] {
	body := func(in *Inbox[M]) eff.IO[E, eff.Unit] {
		return func(ex eff.Executor, k func(eff.Result[E, eff.Unit])) {
			var step func()
			step = func() {
				Receive[E](in)(ex, func(r eff.Result[E, M]) {
					msg, _ := r.Success()
					fn(msg)(ex, func(r eff.Result[E, eff.Unit]) {
						if r.IsErr() {
							k(r)
							return
						}
						ex.Enqueue(step)
					})
				})
			}
			step()
		}
	}
	return Spawn(body, onExit)
}
