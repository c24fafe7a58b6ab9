package actor

import (
	"github.com/codewandler/actio-go/core/eff"
)

// RunProgram is the entry point for an actor application. It creates a
// runtime, spawns root as the top-level process with [ExitOnError] as
// its on-exit address, and runs the scheduler until it goes idle.
//
// A root failure prints the error and exits the host process with
// status -1. A root success lets the scheduler drain whatever other
// processes are still running, then returns.
func RunProgram[E, M any](root func(in *Inbox[M]) eff.IO[E, eff.Unit], opt Options) {
	rt := NewRuntime(opt)
	rt.Enqueue(func() {
		Spawn(root, ExitOnError[E, eff.Unit]())(rt, func(eff.Result[E, Address[M]]) {})
	})
	rt.Run()
}
