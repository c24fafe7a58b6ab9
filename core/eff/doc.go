// Package eff provides deferred effectful computations with separate
// success and error channels.
//
// The core type [IO] is a continuation-passing value: it accepts an
// [Executor] (the environment it runs under) and a callback that receives
// the final [Result]. Values are built with constructors and combinators
// and only perform their effects when driven by a runtime, never at
// construction time. Running the same IO twice performs its effects twice.
//
// # Core Operations
//
//   - [Return], [Fail], [None]: lift values and errors
//   - [AndThen], [Map], [Recover], [MapError]: sequencing and error handling
//   - [AndMap], [Map2], [Map3], [Map4]: applicative composition,
//     evaluated sequentially left to right
//   - [Then], [Keep]: sequencing that drops one of the two values
//   - [Batch], [Sequence]: ordered list execution, short-circuiting on the
//     first failure
//
// # Primitives
//
//   - [Print]: write a line to the executor's stdout
//   - [Sleep]: suspend the current continuation for a duration
//   - [Exit]: terminate the host process; the continuation is never called
//   - [Yield]: reschedule the current continuation to a later turn
//
// Suspending primitives hand control back to the executor; everything else
// runs to completion without yielding.
package eff
