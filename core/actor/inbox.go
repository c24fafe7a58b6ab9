package actor

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/actio-go/core/ds"
	"github.com/codewandler/actio-go/core/eff"
	"github.com/codewandler/actio-go/internal/reflector"
)

// inboxState is the untyped core of an inbox: an identity, a FIFO message
// queue and a FIFO waiter queue. At any quiescent moment at most one of
// the two queues is non-empty: a send meeting a parked waiter hands the
// message off directly, and a receive meeting a queued message consumes
// it directly.
type inboxState struct {
	id       string
	msgType  string
	messages ds.Queue[any]
	waiters  ds.Queue[func(any)]
	closed   bool
}

// close marks the inbox dead. Queued messages are dropped and parked
// waiters never resume. Subsequent sends become dead letters.
func (st *inboxState) close() {
	st.closed = true
	st.messages.Clear()
	st.waiters.Clear()
}

// Inbox is a typed FIFO message queue. An inbox created by [Spawn] is
// owned by the spawned process and closed when that process terminates;
// an inbox from [NewInbox] lives as long as it is referenced.
type Inbox[M any] struct {
	st *inboxState
}

// NewInbox allocates a fresh inbox with a unique identity.
func NewInbox[M any]() *Inbox[M] {
	return &Inbox[M]{st: &inboxState{
		id:      gonanoid.Must(8),
		msgType: reflector.TypeNameFor[M](),
	}}
}

// ID returns the inbox identity.
func (in *Inbox[M]) ID() string { return in.st.id }

// Receive takes the next message from the inbox. A queued message is
// consumed on the current turn; an empty inbox parks the continuation
// until a send arrives. Receive never fails.
func Receive[E, M any](in *Inbox[M]) eff.IO[E, M] {
	return func(ex eff.Executor, k func(eff.Result[E, M])) {
		st := in.st
		if msg, ok := st.messages.Pop(); ok {
			runtimeMetrics(ex).MailboxDepth(st.id, st.messages.Len())
			k(eff.Ok[E](msg.(M)))
			return
		}
		st.waiters.Push(func(msg any) {
			k(eff.Ok[E](msg.(M)))
		})
	}
}
