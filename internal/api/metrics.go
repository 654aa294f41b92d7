package api

import (
	"sync/atomic"
	"time"
)

// Metrics tracks gateway call metrics
type Metrics struct {
	calls            int64
	errors           int64
	latency          int64 // Total latency in nanoseconds
	unauthorizedHits int64
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		calls:            atomic.LoadInt64(&globalMetrics.calls),
		errors:           atomic.LoadInt64(&globalMetrics.errors),
		latency:          atomic.LoadInt64(&globalMetrics.latency),
		unauthorizedHits: atomic.LoadInt64(&globalMetrics.unauthorizedHits),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.calls, 0)
	atomic.StoreInt64(&globalMetrics.errors, 0)
	atomic.StoreInt64(&globalMetrics.latency, 0)
	atomic.StoreInt64(&globalMetrics.unauthorizedHits, 0)
}

// recordCall records one backend request
func recordCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.calls, 1)
	atomic.AddInt64(&globalMetrics.latency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.errors, 1)
	}
}

// recordUnauthorized records an observed 401
func recordUnauthorized() {
	atomic.AddInt64(&globalMetrics.unauthorizedHits, 1)
}

// Calls returns the number of backend requests issued
func (m Metrics) Calls() int64 { return m.calls }

// UnauthorizedHits returns how many times the 401 policy fired
func (m Metrics) UnauthorizedHits() int64 { return m.unauthorizedHits }

// AverageLatency returns the average request latency in milliseconds
func (m Metrics) AverageLatency() float64 {
	if m.calls == 0 {
		return 0
	}
	avgNs := float64(m.latency) / float64(m.calls)
	return avgNs / 1e6
}

// ErrorRate returns the error rate as a percentage
func (m Metrics) ErrorRate() float64 {
	if m.calls == 0 {
		return 0
	}
	return float64(m.errors) / float64(m.calls) * 100
}
