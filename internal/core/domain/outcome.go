package domain

import "time"

// Outcome is the terminal result of one component update, or of a
// specifier that was rejected before any task started.
type Outcome struct {
	Label   string
	Project string
	Kind    ComponentKind
	State   TaskState
	Err     error
	// Reason is the operator-facing explanation of a skip or failure.
	Reason   string
	Warnings []string
	Started  time.Time
	Finished time.Time
}

// Succeeded reports whether the outcome does not count as a failure.
// Skipped outcomes are successful.
func (o Outcome) Succeeded() bool {
	return o.State != StateFailed
}

// Duration returns the wall-clock time the update took.
func (o Outcome) Duration() time.Duration {
	if o.Finished.IsZero() || o.Started.IsZero() {
		return 0
	}
	return o.Finished.Sub(o.Started)
}

// Message returns the operator-facing reason, falling back to the error text.
func (o Outcome) Message() string {
	if o.Reason != "" {
		return o.Reason
	}
	if o.Err != nil {
		return o.Err.Error()
	}
	return ""
}

// FailedOutcome builds an outcome for work that never entered the state machine.
func FailedOutcome(label, reason string, err error) Outcome {
	now := time.Now()
	return Outcome{
		Label:    label,
		Project:  label,
		State:    StateFailed,
		Err:      err,
		Reason:   reason,
		Started:  now,
		Finished: now,
	}
}
