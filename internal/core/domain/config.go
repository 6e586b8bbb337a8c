package domain

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultMaxParallelJobs is used when no valid parallelism is configured.
	DefaultMaxParallelJobs = 4
	// DefaultTaskTimeout bounds a single component update.
	DefaultTaskTimeout = 10 * time.Minute
)

// UpdateConfig is supplied once per invocation and read-only afterwards.
type UpdateConfig struct {
	MaxParallelJobs int
	Verbose         bool
	Targets         []string
	// TaskTimeout of zero disables the per-task deadline.
	TaskTimeout time.Duration
}

// Normalize returns a copy with invalid parallelism coerced to the default.
func (c UpdateConfig) Normalize() UpdateConfig {
	if c.MaxParallelJobs <= 0 {
		c.MaxParallelJobs = DefaultMaxParallelJobs
	}
	if c.TaskTimeout < 0 {
		c.TaskTimeout = 0
	}
	return c
}

// ParseJobCount parses a parallelism value. Invalid or non-positive input
// yields the default together with an error describing what was rejected.
func ParseJobCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return DefaultMaxParallelJobs, zerr.With(zerr.Wrap(ErrInvalidJobCount, "using default"), "value", raw)
	}
	return n, nil
}
