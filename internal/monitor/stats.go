// Package monitor tracks line counts and elapsed time for one pipeline run.
package monitor

import (
	"fmt"
	"time"
)

// Stats collects per-run counters and the computation start time.
// A run owns its Stats and hands it to the formatter explicitly.
type Stats struct {
	totalLines   int
	validLines   int
	invalidLines int
	startTime    time.Time
	now          func() time.Time
}

// NewStats creates a new collector. The clock starts on Start.
func NewStats() *Stats {
	return &Stats{now: time.Now}
}

// Start marks the beginning of the timed interval.
func (s *Stats) Start() {
	s.startTime = s.now()
}

// Record adds the outcome of classifying a batch of lines.
func (s *Stats) Record(valid, invalid int) {
	s.validLines += valid
	s.invalidLines += invalid
	s.totalLines += valid + invalid
}

// Total returns the total number of classified lines.
func (s *Stats) Total() int {
	return s.totalLines
}

// Valid returns the number of lines that became samples.
func (s *Stats) Valid() int {
	return s.validLines
}

// Invalid returns the number of rejected lines.
func (s *Stats) Invalid() int {
	return s.invalidLines
}

// Elapsed returns the time since Start, or 0 if Start was never called.
func (s *Stats) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return s.now().Sub(s.startTime)
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	return fmt.Sprintf("lines=%d valid=%d invalid=%d elapsed=%s",
		s.totalLines, s.validLines, s.invalidLines, s.Elapsed().Round(time.Microsecond))
}
