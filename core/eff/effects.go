package eff

import (
	"fmt"
	"time"
)

// Print writes s followed by a newline to the executor's standard output.
// Write errors are not surfaced.
func Print[E any](s string) IO[E, Unit] {
	return func(ex Executor, k func(Result[E, Unit])) {
		fmt.Fprintln(ex.Stdout(), s)
		k(Ok[E](UnitValue))
	}
}

// Sleep suspends the current continuation for at least d.
func Sleep[E any](d time.Duration) IO[E, Unit] {
	return func(ex Executor, k func(Result[E, Unit])) {
		ex.After(d, func() {
			k(Ok[E](UnitValue))
		})
	}
}

// Exit terminates the host process with the given status. The
// continuation is never invoked; any computation sequenced after Exit is
// unreachable.
func Exit[E, A any](status int) IO[E, A] {
	return func(ex Executor, _ func(Result[E, A])) {
		ex.Exit(status)
	}
}

// Yield reschedules the current continuation to a later scheduler turn,
// giving other ready continuations a chance to run. Long CPU-bound work
// should be chunked with Yield; the runtime never preempts.
func Yield[E any]() IO[E, Unit] {
	return func(ex Executor, k func(Result[E, Unit])) {
		ex.Enqueue(func() {
			k(Ok[E](UnitValue))
		})
	}
}
