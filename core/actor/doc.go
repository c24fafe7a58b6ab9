// Package actor is a cooperative actor runtime over [eff.IO] values.
//
// A [Runtime] schedules continuations on a single goroutine. Processes
// started with [Spawn] own a typed [Inbox]; [Address] values are
// send-only capabilities over those inboxes, optionally transforming
// the sent value on the way in. [Async] and [Await] provide futures,
// [Call] request-reply, and [SpawnWorker] and [SpawnStateMachine]
// message-loop sugar. [RunProgram] wires a root process to a fresh
// runtime and drains it.
//
// Everything in this package assumes single-threaded execution under
// one Runtime; none of the types are safe for concurrent use.
package actor
