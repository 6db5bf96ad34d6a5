package qsim

import (
	"sync"
	"time"
)

// Metrics tracks cumulative simulator activity across runs.
type Metrics struct {
	mu                sync.RWMutex
	RunCount          int64
	ShotCount         int64
	GatesApplied      int64
	MeasurementsTaken int64
	TotalRunTime      time.Duration
	AverageRunTime    time.Duration
	LastRun           time.Time
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordRun(startTime time.Time, shots int, gates, measurements int64) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.RunCount++
	m.ShotCount += int64(shots)
	m.GatesApplied += gates
	m.MeasurementsTaken += measurements
	m.TotalRunTime += duration
	m.AverageRunTime = m.TotalRunTime / time.Duration(m.RunCount)
	m.LastRun = time.Now()
}

// ExportMetrics returns a snapshot suitable for logging or JSON output.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"run_count":          m.RunCount,
		"shot_count":         m.ShotCount,
		"gates_applied":      m.GatesApplied,
		"measurements_taken": m.MeasurementsTaken,
		"total_run_ms":       m.TotalRunTime.Milliseconds(),
		"avg_run_ms":         m.AverageRunTime.Milliseconds(),
	}
}
