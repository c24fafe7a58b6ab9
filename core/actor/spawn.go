package actor

import (
	"log/slog"

	"github.com/codewandler/actio-go/core/eff"
)

// Spawn starts a child process running body with a fresh inbox. The
// address of that inbox is returned on the current turn; the body itself
// begins on a later turn, so a spawned process never preempts its parent.
//
// When the body terminates its Result is delivered to onExit exactly
// once, and only then is the inbox closed. Pass [Discard] to ignore the
// outcome, or [ExitOnError] to make a child failure fatal.
func Spawn[E, A, M any](body func(in *Inbox[M]) eff.IO[E, A], onExit Address[eff.Result[E, A]]) eff.IO[E, Address[M]] {
	return func(ex eff.Executor, k func(eff.Result[E, Address[M]])) {
		in := NewInbox[M]()
		ex.Log().Debug("spawn",
			slog.String("inbox_id", in.st.id),
			slog.String("msg_type", in.st.msgType),
		)
		runtimeMetrics(ex).ProcessSpawned()

		ex.Enqueue(func() {
			body(in)(ex, func(r eff.Result[E, A]) {
				onExit.deliver(ex, r)
				in.st.close()
				runtimeMetrics(ex).ProcessExited(r.IsOk())
			})
		})

		k(eff.Ok[E](in.Address()))
	}
}

// Discard is an on-exit address that drops the process outcome.
func Discard[E, A any]() Address[eff.Result[E, A]] {
	return HandlerAddress(func(eff.Executor, eff.Result[E, A]) {})
}
