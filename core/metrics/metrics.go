// Package metrics provides small instrumentation interfaces that keep
// the runtime decoupled from any specific metrics backend.
package metrics

// Timer measures the duration of an operation. Call ObserveDuration when
// the operation completes to record the elapsed time.
type Timer interface {
	// ObserveDuration records the elapsed time since the timer was created.
	ObserveDuration()
}

// TimerFunc creates a new Timer. This allows deferred timing patterns
// like: defer timers.TurnDuration().ObserveDuration()
type TimerFunc func() Timer
