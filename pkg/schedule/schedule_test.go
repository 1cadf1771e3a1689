package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddScheduledTaskValidation(t *testing.T) {
	s := NewScheduler()
	noop := func() {}

	require.NoError(t, s.AddScheduledTask("off", ScheduledConfig{}, noop))
	require.Error(t, s.AddScheduledTask("empty", ScheduledConfig{Enabled: true, Type: TypeCron}, noop))
	require.Error(t, s.AddScheduledTask("bad-type", ScheduledConfig{Enabled: true, Type: "hourly", Value: "1"}, noop))
	require.Error(t, s.AddScheduledTask("bad-delay", ScheduledConfig{Enabled: true, Type: TypeFixedDelay, Value: "abc"}, noop))
	require.Error(t, s.AddScheduledTask("bad-cron", ScheduledConfig{Enabled: true, Type: TypeCron, Value: "not a spec"}, noop))
	require.NoError(t, s.AddScheduledTask("ok", ScheduledConfig{Enabled: true, Type: TypeCron, Value: "*/5 * * * * *"}, noop))
}

func TestFixedDelayRunsUntilStop(t *testing.T) {
	s := NewScheduler()
	var n atomic.Int32
	s.AddFixDelayTask("tick", 10*time.Millisecond, func() { n.Add(1) })
	s.Start()

	require.Eventually(t, func() bool { return n.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	stopped := n.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, stopped, n.Load())
}

func TestFixedDelaySurvivesPanic(t *testing.T) {
	s := NewScheduler()
	var n atomic.Int32
	s.AddFixDelayTask("panicky", 5*time.Millisecond, func() {
		n.Add(1)
		panic("boom")
	})
	s.Start()
	defer s.Stop(context.Background())

	require.Eventually(t, func() bool { return n.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestStopIdempotent(t *testing.T) {
	s := NewScheduler()
	require.NoError(t, s.Stop(context.Background()))
	s.Start()
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
