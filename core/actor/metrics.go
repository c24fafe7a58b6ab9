package actor

import (
	"github.com/codewandler/actio-go/core/eff"
	"github.com/codewandler/actio-go/core/metrics"
)

// RuntimeMetrics defines the instrumentation surface of the runtime.
type RuntimeMetrics interface {
	// Scheduler
	TurnDuration() metrics.Timer
	TurnCompleted()
	ReadyDepth(depth int)
	TimersPending(count int)

	// Processes
	ProcessSpawned()
	ProcessExited(success bool)

	// Message delivery
	MessageDelivered(msgType string, handoff bool)
	DeadLetter(msgType string)
	MailboxDepth(inboxID string, depth int)
}

type nopRuntimeMetrics struct{}

func (nopRuntimeMetrics) TurnDuration() metrics.Timer { return metrics.NopTimer() }
func (nopRuntimeMetrics) TurnCompleted()              {}
func (nopRuntimeMetrics) ReadyDepth(int)              {}
func (nopRuntimeMetrics) TimersPending(int)           {}

func (nopRuntimeMetrics) ProcessSpawned()    {}
func (nopRuntimeMetrics) ProcessExited(bool) {}

func (nopRuntimeMetrics) MessageDelivered(string, bool) {}
func (nopRuntimeMetrics) DeadLetter(string)             {}
func (nopRuntimeMetrics) MailboxDepth(string, int)      {}

// NopRuntimeMetrics returns a no-op RuntimeMetrics implementation.
func NopRuntimeMetrics() RuntimeMetrics { return nopRuntimeMetrics{} }

// runtimeMetrics resolves the metrics sink behind an executor. Foreign
// executors get the no-op sink.
func runtimeMetrics(ex eff.Executor) RuntimeMetrics {
	if rt, ok := ex.(*Runtime); ok {
		return rt.metrics
	}
	return nopRuntimeMetrics{}
}
