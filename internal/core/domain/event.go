package domain

import "time"

// Severity classifies a status line.
type Severity int

const (
	// SeverityInfo marks progress within a task.
	SeverityInfo Severity = iota
	// SeveritySuccess marks a completed update.
	SeveritySuccess
	// SeverityWarning marks a non-fatal problem.
	SeverityWarning
	// SeverityError marks a failed update.
	SeverityError
	// SeveritySkipped marks an update that was deliberately not attempted.
	SeveritySkipped
)

// String returns the upper-case severity name.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "SUCCESS"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeveritySkipped:
		return "SKIPPED"
	default:
		return "INFO"
	}
}

// Event is one status line emitted while updating a component.
type Event struct {
	Time     time.Time
	Severity Severity
	Label    string
	Message  string
}
