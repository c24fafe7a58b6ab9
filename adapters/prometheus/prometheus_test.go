package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuntimeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRuntimeMetrics(reg)

	require.NotNil(t, m)

	// Scheduler
	timer := m.TurnDuration()
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.TurnCompleted()
	m.ReadyDepth(3)
	m.TimersPending(1)

	// Processes
	m.ProcessSpawned()
	m.ProcessExited(true)
	m.ProcessExited(false)

	// Message delivery
	m.MessageDelivered("main.ping", true)
	m.MessageDelivered("main.ping", false)
	m.DeadLetter("main.ping")
	m.MailboxDepth("inbox-123", 10)

	// Verify metrics were registered
	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}

	assert.True(t, names["actio_scheduler_turn_duration_seconds"])
	assert.True(t, names["actio_scheduler_turns_total"])
	assert.True(t, names["actio_processes_spawned_total"])
	assert.True(t, names["actio_messages_delivered_total"])
	assert.True(t, names["actio_dead_letters_total"])
	assert.True(t, names["actio_mailbox_depth"])
}

func TestBoolToStr(t *testing.T) {
	assert.Equal(t, "true", boolToStr(true))
	assert.Equal(t, "false", boolToStr(false))
}
