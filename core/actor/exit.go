package actor

import (
	"fmt"

	"github.com/codewandler/actio-go/core/eff"
)

// ExitOnError returns an on-exit address that treats a process failure
// as fatal: the error is printed to the standard error stream and the
// host process exits with status -1. A success is ignored.
func ExitOnError[E, A any]() Address[eff.Result[E, A]] {
	return HandlerAddress(func(ex eff.Executor, r eff.Result[E, A]) {
		if e, failed := r.Failure(); failed {
			fmt.Fprintln(ex.Stderr(), e)
			ex.Exit(-1)
		}
	})
}

// LogOnError returns an on-exit address that prints a process failure to
// the standard error stream and otherwise does nothing.
func LogOnError[E, A any]() Address[eff.Result[E, A]] {
	return HandlerAddress(func(ex eff.Executor, r eff.Result[E, A]) {
		if e, failed := r.Failure(); failed {
			fmt.Fprintln(ex.Stderr(), e)
		}
	})
}
