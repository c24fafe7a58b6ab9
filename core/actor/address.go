package actor

import (
	"log/slog"

	"github.com/codewandler/actio-go/core/eff"
	"github.com/codewandler/actio-go/internal/reflector"
)

// Address is a send-only capability for values of type V. It targets an
// inbox, transforming each sent value into the inbox's message type, or
// invokes a direct handler for synthetic addresses such as [ExitOnError].
//
// Addresses outlive their target: sending to an inbox whose owning
// process has terminated silently discards the message.
type Address[V any] struct {
	st      *inboxState
	tag     func(V) any
	handler func(ex eff.Executor, v V)
}

// AddressOf wraps an inbox with a value transform: a value sent through
// the returned address arrives in the inbox as tag(v).
func AddressOf[V, M any](tag func(V) M, in *Inbox[M]) Address[V] {
	return Address[V]{
		st:  in.st,
		tag: func(v V) any { return tag(v) },
	}
}

// Address returns the identity address of the inbox.
func (in *Inbox[M]) Address() Address[M] {
	return Address[M]{
		st:  in.st,
		tag: func(m M) any { return m },
	}
}

// HandlerAddress creates a synthetic address backed by a direct handler
// instead of an inbox. The handler runs on the sender's turn.
func HandlerAddress[V any](h func(ex eff.Executor, v V)) Address[V] {
	return Address[V]{handler: h}
}

// deliver routes v to the address target. Exactly one of the following
// happens: the direct handler runs, the message is discarded as a dead
// letter, the oldest parked waiter is resumed with it on a later turn, or
// it is appended to the target's message queue.
func (a Address[V]) deliver(ex eff.Executor, v V) {
	if a.handler != nil {
		a.handler(ex, v)
		return
	}

	st := a.st
	if st == nil || st.closed {
		msgType := reflector.TypeNameOf(v)
		ex.Log().Debug("dead letter",
			slog.String("msg_type", msgType),
		)
		runtimeMetrics(ex).DeadLetter(msgType)
		return
	}

	msg := a.tag(v)
	if w, ok := st.waiters.Pop(); ok {
		ex.Enqueue(func() { w(msg) })
		runtimeMetrics(ex).MessageDelivered(st.msgType, true)
		return
	}

	st.messages.Push(msg)
	m := runtimeMetrics(ex)
	m.MessageDelivered(st.msgType, false)
	m.MailboxDepth(st.id, st.messages.Len())
}

// Send delivers v to the address. Send always succeeds: delivery to a
// dead target is a silent no-op, and mailboxes are unbounded. The
// delivery is complete before any operation sequenced after Send begins.
func Send[E, V any](v V, to Address[V]) eff.IO[E, eff.Unit] {
	return func(ex eff.Executor, k func(eff.Result[E, eff.Unit])) {
		to.deliver(ex, v)
		k(eff.Ok[E](eff.UnitValue))
	}
}

// SendTo partially applies [Send] to an address.
func SendTo[E, V any](to Address[V]) func(V) eff.IO[E, eff.Unit] {
	return func(v V) eff.IO[E, eff.Unit] {
		return Send[E](v, to)
	}
}
