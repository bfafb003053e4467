package api

import "sync/atomic"

// Metrics tracks request statistics using atomic operations for thread-safety
type Metrics struct {
	Requests atomic.Int64
	Failures atomic.Int64
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncRequests increments the requests counter
func (m *Metrics) IncRequests() {
	m.Requests.Add(1)
}

// IncFailures increments the failures counter (transport errors and non-2xx)
func (m *Metrics) IncFailures() {
	m.Failures.Add(1)
}

// GetRequests returns the total requests issued
func (m *Metrics) GetRequests() int64 {
	return m.Requests.Load()
}

// GetFailures returns the total failed requests
func (m *Metrics) GetFailures() int64 {
	return m.Failures.Load()
}
