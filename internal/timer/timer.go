// Package timer reconstructs an active time-tracking session from its start
// timestamp. Elapsed time is always now minus start, recomputed on a fixed
// tick; nothing is persisted per-tick.
package timer

import (
	"context"
	"time"
)

// Timer is an active tracking session for one task.
type Timer struct {
	start  time.Time
	taskID int64
}

// Start begins tracking against a task.
func Start(taskID int64) *Timer {
	return StartAt(taskID, time.Now())
}

// StartAt begins tracking from an explicit instant, e.g. a start timestamp
// restored from a stored work log.
func StartAt(taskID int64, start time.Time) *Timer {
	return &Timer{start: start, taskID: taskID}
}

// TaskID returns the task being tracked.
func (t *Timer) TaskID() int64 { return t.taskID }

// StartTime returns when tracking began.
func (t *Timer) StartTime() time.Time { return t.start }

// Elapsed returns the running duration as of now.
func (t *Timer) Elapsed() time.Duration {
	return t.ElapsedAt(time.Now())
}

// ElapsedAt returns the running duration as of a given instant.
func (t *Timer) ElapsedAt(now time.Time) time.Duration {
	d := now.Sub(t.start)
	if d < 0 {
		return 0
	}
	return d
}

// Hours returns the elapsed time in fractional hours, the unit work logs
// are recorded in.
func (t *Timer) Hours() float64 {
	return t.Elapsed().Hours()
}

// Run invokes fn with the current elapsed duration on every tick until ctx
// is cancelled.
func (t *Timer) Run(ctx context.Context, interval time.Duration, fn func(elapsed time.Duration)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			fn(t.ElapsedAt(now))
		}
	}
}
