package domain

import "time"

// UpdateStats aggregates the outcomes of a batch.
// It is written only by the orchestrating goroutine after all tasks joined.
type UpdateStats struct {
	TotalProjects     int       `json:"total_projects"`
	SuccessfulUpdates int       `json:"successful_updates"`
	FailedUpdates     int       `json:"failed_updates"`
	SkippedProjects   int       `json:"skipped_projects"`
	StartTime         time.Time `json:"start_time,omitzero"`
	EndTime           time.Time `json:"end_time,omitzero"`
}

// Start records the batch start time.
func (s *UpdateStats) Start(now time.Time) {
	s.StartTime = now
}

// Finish records the batch end time.
func (s *UpdateStats) Finish(now time.Time) {
	s.EndTime = now
}

// Record folds one outcome into the counters.
func (s *UpdateStats) Record(o Outcome) {
	s.TotalProjects++
	switch o.State {
	case StateSkipped:
		s.SkippedProjects++
	case StateSucceeded:
		s.SuccessfulUpdates++
	default:
		s.FailedUpdates++
	}
}

// Aggregate folds all outcomes into a fresh UpdateStats.
func Aggregate(outcomes []Outcome, start, end time.Time) UpdateStats {
	stats := UpdateStats{}
	stats.Start(start)
	for _, o := range outcomes {
		stats.Record(o)
	}
	stats.Finish(end)
	return stats
}

// Duration returns the elapsed wall-clock time of the batch.
func (s UpdateStats) Duration() time.Duration {
	if s.EndTime.Before(s.StartTime) {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// HasFailures reports whether the process should exit with a failure status.
func (s UpdateStats) HasFailures() bool {
	return s.FailedUpdates > 0
}

// Balanced reports whether every launched task landed in exactly one bucket.
func (s UpdateStats) Balanced() bool {
	return s.SuccessfulUpdates+s.FailedUpdates+s.SkippedProjects == s.TotalProjects
}
