package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/actio-go/core/actor"
	"github.com/codewandler/actio-go/core/metrics"
)

// runtimeMetrics implements actor.RuntimeMetrics using Prometheus.
type runtimeMetrics struct {
	turnDuration   prometheus.Histogram
	turnsTotal     prometheus.Counter
	readyDepth     prometheus.Gauge
	timersPending  prometheus.Gauge
	processesTotal prometheus.Counter
	exitsTotal     *prometheus.CounterVec
	messagesTotal  *prometheus.CounterVec
	deadLetters    *prometheus.CounterVec
	mailboxDepth   *prometheus.GaugeVec
}

// NewRuntimeMetrics creates a new Prometheus implementation of
// actor.RuntimeMetrics and registers its collectors on reg.
func NewRuntimeMetrics(reg prometheus.Registerer) actor.RuntimeMetrics {
	m := &runtimeMetrics{
		turnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "actio_scheduler_turn_duration_seconds",
			Help:    "Scheduler turn duration in seconds",
			Buckets: defaultBuckets,
		}),

		turnsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "actio_scheduler_turns_total",
			Help: "Total number of scheduler turns completed",
		}),

		readyDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "actio_scheduler_ready_depth",
			Help: "Current ready queue depth",
		}),

		timersPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "actio_scheduler_timers_pending",
			Help: "Number of pending timers",
		}),

		processesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "actio_processes_spawned_total",
			Help: "Total number of processes spawned",
		}),

		exitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "actio_processes_exited_total",
			Help: "Total number of processes exited",
		}, []string{"success"}),

		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "actio_messages_delivered_total",
			Help: "Total number of messages delivered",
		}, []string{"message_type", "handoff"}),

		deadLetters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "actio_dead_letters_total",
			Help: "Total number of messages discarded as dead letters",
		}, []string{"message_type"}),

		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "actio_mailbox_depth",
			Help: "Current mailbox queue depth",
		}, []string{"inbox_id"}),
	}

	reg.MustRegister(
		m.turnDuration,
		m.turnsTotal,
		m.readyDepth,
		m.timersPending,
		m.processesTotal,
		m.exitsTotal,
		m.messagesTotal,
		m.deadLetters,
		m.mailboxDepth,
	)

	return m
}

func (m *runtimeMetrics) TurnDuration() metrics.Timer {
	return newTimer(m.turnDuration)
}

func (m *runtimeMetrics) TurnCompleted() {
	m.turnsTotal.Inc()
}

func (m *runtimeMetrics) ReadyDepth(depth int) {
	m.readyDepth.Set(float64(depth))
}

func (m *runtimeMetrics) TimersPending(count int) {
	m.timersPending.Set(float64(count))
}

func (m *runtimeMetrics) ProcessSpawned() {
	m.processesTotal.Inc()
}

func (m *runtimeMetrics) ProcessExited(success bool) {
	m.exitsTotal.WithLabelValues(boolToStr(success)).Inc()
}

func (m *runtimeMetrics) MessageDelivered(msgType string, handoff bool) {
	m.messagesTotal.WithLabelValues(msgType, boolToStr(handoff)).Inc()
}

func (m *runtimeMetrics) DeadLetter(msgType string) {
	m.deadLetters.WithLabelValues(msgType).Inc()
}

func (m *runtimeMetrics) MailboxDepth(inboxID string, depth int) {
	m.mailboxDepth.WithLabelValues(inboxID).Set(float64(depth))
}

var _ actor.RuntimeMetrics = (*runtimeMetrics)(nil)
