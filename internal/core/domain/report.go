package domain

import "time"

// RunReport is the persisted record of one batch.
type RunReport struct {
	RunID    string          `json:"run_id"`
	Targets  []string        `json:"targets,omitempty"`
	Jobs     int             `json:"jobs"`
	Stats    UpdateStats     `json:"stats"`
	Outcomes []OutcomeRecord `json:"outcomes"`
	// OutputDir holds the command output of every component.
	OutputDir string `json:"output_dir,omitempty"`
}

// OutcomeRecord is the serialisable form of an Outcome.
type OutcomeRecord struct {
	Label    string        `json:"label"`
	State    TaskState     `json:"state"`
	Error    string        `json:"error,omitzero"`
	Warnings []string      `json:"warnings,omitempty"`
	Duration time.Duration `json:"duration"`
}

// NewOutcomeRecord converts an outcome for persistence.
func NewOutcomeRecord(o Outcome) OutcomeRecord {
	return OutcomeRecord{
		Label:    o.Label,
		State:    o.State,
		Error:    o.Message(),
		Warnings: o.Warnings,
		Duration: o.Duration(),
	}
}

// Outcome restores the displayable parts of a persisted outcome.
func (r OutcomeRecord) Outcome(finished time.Time) Outcome {
	return Outcome{
		Label:    r.Label,
		Project:  r.Label,
		State:    r.State,
		Reason:   r.Error,
		Warnings: r.Warnings,
		Started:  finished.Add(-r.Duration),
		Finished: finished,
	}
}

// RestoreOutcomes returns every persisted outcome of the run.
func (r RunReport) RestoreOutcomes() []Outcome {
	out := make([]Outcome, len(r.Outcomes))
	for i, rec := range r.Outcomes {
		out[i] = rec.Outcome(r.Stats.EndTime)
	}
	return out
}
