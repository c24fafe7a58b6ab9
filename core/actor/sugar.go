package actor

import (
	"github.com/codewandler/actio-go/core/eff"
)

// Call performs a request-reply round trip: it allocates a one-shot
// reply inbox, sends wrap(replyAddr) to the target and suspends until
// the reply arrives. The callee is expected to send exactly one R to the
// reply address it was handed.
//
// A callee that never replies leaves the caller suspended forever; a
// dead callee turns the request into a dead letter with the same result.
func Call[E, V, R any](wrap func(reply Address[R]) V, to Address[V]) eff.IO[E, R] {
	return func(ex eff.Executor, k func(eff.Result[E, R])) {
		reply := NewInbox[R]()
		to.deliver(ex, wrap(reply.Address()))
		Receive[E](reply)(ex, k)
	}
}

// DeferTo runs m as a hidden process on a later turn and sends its
// Result to the given address instead of propagating it. The returned
// computation succeeds immediately, which makes it safe to sequence
// fire-and-forget work in a context with an unrelated error type.
func DeferTo[X, E, A any](m eff.IO[E, A], to Address[eff.Result[E, A]]) eff.IO[X, eff.Unit] {
	return func(ex eff.Executor, k func(eff.Result[X, eff.Unit])) {
		body := func(_ *Inbox[eff.Unit]) eff.IO[E, A] { return m }
		Spawn(body, to)(ex, func(eff.Result[E, Address[eff.Unit]]) {})
		k(eff.Ok[X](eff.UnitValue))
	}
}
