package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics tracks daemon statistics using atomic operations for thread-safety
type Metrics struct {
	Requests      atomic.Int64
	ServerErrors  atomic.Int64
	Uploads       atomic.Int64
	DefaultLoads  atomic.Int64
	FetchFailures atomic.Int64
	SkippedRows   atomic.Int64
	CommentsAdded atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the handled requests counter
func (m *Metrics) IncRequests() {
	m.Requests.Add(1)
}

// IncServerErrors increments the 5xx responses counter
func (m *Metrics) IncServerErrors() {
	m.ServerErrors.Add(1)
}

// IncUploads increments the successful uploads counter
func (m *Metrics) IncUploads() {
	m.Uploads.Add(1)
}

// IncDefaultLoads increments the successful default dataset loads counter
func (m *Metrics) IncDefaultLoads() {
	m.DefaultLoads.Add(1)
}

// IncFetchFailures increments the failed default dataset fetches counter
func (m *Metrics) IncFetchFailures() {
	m.FetchFailures.Add(1)
}

// AddSkippedRows adds to the count of CSV rows dropped during ingestion
func (m *Metrics) AddSkippedRows(n int) {
	m.SkippedRows.Add(int64(n))
}

// IncCommentsAdded increments the stored comments counter
func (m *Metrics) IncCommentsAdded() {
	m.CommentsAdded.Add(1)
}

// GetRequests returns the total handled requests
func (m *Metrics) GetRequests() int64 {
	return m.Requests.Load()
}

// GetServerErrors returns the total 5xx responses
func (m *Metrics) GetServerErrors() int64 {
	return m.ServerErrors.Load()
}

// GetUploads returns the total successful uploads
func (m *Metrics) GetUploads() int64 {
	return m.Uploads.Load()
}

// GetDefaultLoads returns the total successful default loads
func (m *Metrics) GetDefaultLoads() int64 {
	return m.DefaultLoads.Load()
}

// GetFetchFailures returns the total failed default fetches
func (m *Metrics) GetFetchFailures() int64 {
	return m.FetchFailures.Load()
}

// GetSkippedRows returns the total rows skipped across ingestions
func (m *Metrics) GetSkippedRows() int64 {
	return m.SkippedRows.Load()
}

// GetCommentsAdded returns the total stored comments
func (m *Metrics) GetCommentsAdded() int64 {
	return m.CommentsAdded.Load()
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Requests      int64     `json:"requests"`
	ServerErrors  int64     `json:"server_errors"`
	Uploads       int64     `json:"uploads"`
	DefaultLoads  int64     `json:"default_loads"`
	FetchFailures int64     `json:"fetch_failures"`
	SkippedRows   int64     `json:"skipped_rows"`
	CommentsAdded int64     `json:"comments_added"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:      m.GetRequests(),
		ServerErrors:  m.GetServerErrors(),
		Uploads:       m.GetUploads(),
		DefaultLoads:  m.GetDefaultLoads(),
		FetchFailures: m.GetFetchFailures(),
		SkippedRows:   m.GetSkippedRows(),
		CommentsAdded: m.GetCommentsAdded(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).String(),
	}
}
