package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElapsedAt_IsNowMinusStart(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tm := StartAt(42, start)

	assert.Equal(t, int64(42), tm.TaskID())
	assert.Equal(t, start, tm.StartTime())
	assert.Equal(t, 90*time.Minute, tm.ElapsedAt(start.Add(90*time.Minute)))
	assert.InDelta(t, 1.5, tm.ElapsedAt(start.Add(90*time.Minute)).Hours(), 1e-9)
}

func TestElapsedAt_ClockBehindStartClampsToZero(t *testing.T) {
	start := time.Now().Add(time.Hour)
	tm := StartAt(1, start)
	assert.Equal(t, time.Duration(0), tm.ElapsedAt(time.Now()))
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	tm := Start(1)
	ctx, cancel := context.WithCancel(context.Background())

	var ticks int
	done := make(chan struct{})
	go func() {
		defer close(done)
		tm.Run(ctx, time.Millisecond, func(elapsed time.Duration) {
			ticks++
			if ticks >= 3 {
				cancel()
			}
		})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
	require.GreaterOrEqual(t, ticks, 3)
}
