package eff

import (
	"io"
	"log/slog"
	"time"
)

// Executor is the environment an [IO] runs under. It is implemented by the
// actor runtime; computations reach it only through the primitives in this
// package and through suspension points in the actor layer.
type Executor interface {
	// Enqueue schedules run on a later scheduler turn.
	Enqueue(run func())
	// After schedules run once at least d has elapsed.
	After(d time.Duration, run func())
	// Exit terminates the host process with the given status.
	Exit(status int)

	Stdout() io.Writer
	Stderr() io.Writer
	Log() *slog.Logger
}

// IO is a deferred computation producing a [Result]. The callback k is
// invoked exactly once, unless the computation suspends forever or the
// host process exits first.
//
// IO values are inert until driven by an [Executor]; building one performs
// no effects.
type IO[E, A any] func(ex Executor, k func(Result[E, A]))

// Return lifts a pure value into a computation that always succeeds.
func Return[E, A any](a A) IO[E, A] {
	return func(_ Executor, k func(Result[E, A])) {
		k(Ok[E](a))
	}
}

// Succeed is an alias for [Return].
func Succeed[E, A any](a A) IO[E, A] { return Return[E](a) }

// Fail lifts an error into a computation that always fails.
func Fail[E, A any](e E) IO[E, A] {
	return func(_ Executor, k func(Result[E, A])) {
		k(Err[E, A](e))
	}
}

// None is the unit computation: it succeeds immediately with [UnitValue].
func None[E any]() IO[E, Unit] {
	return Return[E](UnitValue)
}

// FromResult lifts an already-computed result into a computation.
func FromResult[E, A any](r Result[E, A]) IO[E, A] {
	return func(_ Executor, k func(Result[E, A])) {
		k(r)
	}
}

// Suspend creates a computation from a raw CPS function. This is the
// escape hatch used by the actor layer to build suspension points.
func Suspend[E, A any](f func(ex Executor, k func(Result[E, A]))) IO[E, A] {
	return IO[E, A](f)
}
