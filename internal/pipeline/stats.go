package pipeline

import (
	"slices"
	"sync"
	"time"
)

// ExportSample describes one successful export.
type ExportSample struct {
	DurationMs int64
	Bytes      int
	Slides     int
	Warnings   int
}

type sample struct {
	at time.Time
	ExportSample
}

// StatsSnapshot aggregates the exports still inside the window.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`

	Slides   int     `json:"slides"`
	AvgBytes float64 `json:"avg_bytes"`
	MaxBytes int     `json:"max_bytes"`
	// Warnings counts skipped elements; Partial counts exports with any.
	Warnings int `json:"warnings"`
	Partial  int `json:"partial"`
}

// ExportStats keeps recent export samples within a rolling window.
type ExportStats struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
	now     func() time.Time
}

func NewExportStats(maxAge time.Duration) *ExportStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &ExportStats{
		samples: make([]sample, 0, 64),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

func (s *ExportStats) Record(es ExportSample) {
	es.DurationMs = max(es.DurationMs, 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)
	s.samples = append(s.samples, sample{at: now, ExportSample: es})
}

func (s *ExportStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.now())
	if len(s.samples) == 0 {
		return StatsSnapshot{}
	}

	snap := StatsSnapshot{Count: len(s.samples)}
	durations := make([]int64, 0, len(s.samples))
	var sumMs int64
	var sumBytes int
	for _, sm := range s.samples {
		durations = append(durations, sm.DurationMs)
		sumMs += sm.DurationMs
		sumBytes += sm.Bytes
		snap.MaxBytes = max(snap.MaxBytes, sm.Bytes)
		snap.Slides += sm.Slides
		snap.Warnings += sm.Warnings
		if sm.Warnings > 0 {
			snap.Partial++
		}
	}
	slices.Sort(durations)

	n := float64(len(durations))
	snap.MinMs = durations[0]
	snap.MaxMs = durations[len(durations)-1]
	snap.AvgMs = float64(sumMs) / n
	snap.P50Ms = percentile(durations, 50)
	snap.P95Ms = percentile(durations, 95)
	snap.P99Ms = percentile(durations, 99)
	snap.AvgBytes = float64(sumBytes) / n
	return snap
}

func (s *ExportStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	s.samples = slices.DeleteFunc(s.samples, func(sm sample) bool {
		return sm.at.Before(cutoff)
	})
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sorted[0])
	}
	if pct >= 100 {
		return float64(sorted[len(sorted)-1])
	}

	index := float64(len(sorted)-1) * pct / 100
	lower := int(index)
	if lower+1 >= len(sorted) {
		return float64(sorted[lower])
	}
	weight := index - float64(lower)
	lo, hi := float64(sorted[lower]), float64(sorted[lower+1])
	return lo + (hi-lo)*weight
}
