package actor

import (
	"log/slog"

	"github.com/codewandler/actio-go/core/eff"
)

// StateMachine describes an actor as a model plus two pure-ish hooks.
// Init produces the initial model and a startup effect; Update folds
// each received message into the next model and an effect to run before
// the next receive.
type StateMachine[Args, Model, Msg, E any] struct {
	Init   func(args Args) (Model, eff.IO[E, eff.Unit])
	Update func(msg Msg, model Model) (Model, eff.IO[E, eff.Unit])
}

// SpawnStateMachine starts a state machine process and returns its
// address on the current turn.
//
// Init and its startup effect run before the first receive. An init
// failure is forwarded to onExit and the loop never starts; the inbox is
// left open, so messages sent to the returned address accumulate
// unconsumed. After a successful init the loop is receive, update, run
// the emitted effect, repeat. An effect failure terminates the machine
// and is forwarded to onExit, closing the inbox.
func SpawnStateMachine[Args, Model, Msg, E any](
	sm StateMachine[Args, Model, Msg, E],
	args Args,
	onExit Address[eff.Result[E, eff.Unit]],
) eff.IO[E, Address[Msg]] {
	return func(ex eff.Executor, k func(eff.Result[E, Address[Msg]])) {
		in := NewInbox[Msg]()
		ex.Log().Debug("spawn state machine",
			slog.String("inbox_id", in.st.id),
			slog.String("msg_type", in.st.msgType),
		)
		runtimeMetrics(ex).ProcessSpawned()

		ex.Enqueue(func() {
			model, initIO := sm.Init(args)
			initIO(ex, func(r eff.Result[E, eff.Unit]) {
				if r.IsErr() {
					onExit.deliver(ex, r)
					runtimeMetrics(ex).ProcessExited(false)
					return
				}
				runLoop(ex, sm, in, model, onExit)
			})
		})

		k(eff.Ok[E](in.Address()))
	}
}

func runLoop[Args, Model, Msg, E any](
	ex eff.Executor,
	sm StateMachine[Args, Model, Msg, E],
	in *Inbox[Msg],
	model Model,
	onExit Address[eff.Result[E, eff.Unit]],
) {
	var step func(model Model)
	step = func(model Model) {
		Receive[E](in)(ex, func(r eff.Result[E, Msg]) {
			msg, _ := r.Success()
			next, io := sm.Update(msg, model)
			io(ex, func(r eff.Result[E, eff.Unit]) {
				if r.IsErr() {
					onExit.deliver(ex, r)
					in.st.close()
					runtimeMetrics(ex).ProcessExited(false)
					return
				}
				ex.Enqueue(func() { step(next) })
			})
		})
	}
	step(model)
}
