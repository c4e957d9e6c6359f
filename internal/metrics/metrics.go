package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	EntriesProcessed   int64
	EntriesMalformed   int64
	DuplicatesFiltered int64
	ArticlesStored     int64
	SourcesFailed      int64
	ModelCalls         int64
	TitlesTranslated   int64
	EmailsSent         int64

	// Timings
	LastFetchTime  time.Duration
	LastReportTime time.Duration

	// Status
	SummaryDegraded bool
	LastRunTime     time.Time
	LastErrorTime   time.Time
	LastError       string
	IsHealthy       bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementEntriesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesProcessed++
}

func (m *Metrics) IncrementEntriesMalformed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesMalformed++
}

func (m *Metrics) IncrementDuplicatesFiltered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered++
}

func (m *Metrics) IncrementArticlesStored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesStored++
}

func (m *Metrics) IncrementSourcesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesFailed++
}

func (m *Metrics) IncrementModelCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ModelCalls++
}

func (m *Metrics) IncrementTitlesTranslated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TitlesTranslated++
}

func (m *Metrics) IncrementEmailsSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmailsSent++
}

func (m *Metrics) SetSummaryDegraded(degraded bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummaryDegraded = degraded
}

func (m *Metrics) RecordFetchTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastFetchTime = duration
}

func (m *Metrics) RecordReportTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastReportTime = duration
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"entries_processed":   m.EntriesProcessed,
		"entries_malformed":   m.EntriesMalformed,
		"duplicates_filtered": m.DuplicatesFiltered,
		"articles_stored":     m.ArticlesStored,
		"sources_failed":      m.SourcesFailed,
		"model_calls":         m.ModelCalls,
		"titles_translated":   m.TitlesTranslated,
		"emails_sent":         m.EmailsSent,
		"last_fetch_time_ms":  m.LastFetchTime.Milliseconds(),
		"last_report_time_ms": m.LastReportTime.Milliseconds(),
		"summary_degraded":    m.SummaryDegraded,
		"last_run_time":       m.LastRunTime.Format(time.RFC3339),
		"last_error_time":     m.LastErrorTime.Format(time.RFC3339),
		"last_error":          m.LastError,
		"is_healthy":          m.IsHealthy,
	}
}
