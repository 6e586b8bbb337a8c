// Package scheduler runs independent jobs with a fixed concurrency limit.
package scheduler

import (
	"context"
	"fmt"

	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Job is one unit of work. Run reports its own outcome; failures are
// contained in the outcome and never abort sibling jobs.
type Job struct {
	Label string
	Run   func(ctx context.Context) domain.Outcome
}

// Scheduler admits at most Limit jobs at a time.
type Scheduler struct {
	limit int
}

// New creates a Scheduler. A non-positive limit falls back to the default.
func New(limit int) *Scheduler {
	if limit <= 0 {
		limit = domain.DefaultMaxParallelJobs
	}
	return &Scheduler{limit: limit}
}

// Limit returns the effective concurrency limit.
func (s *Scheduler) Limit() int {
	return s.limit
}

// Run executes every job and returns one outcome per job in submission
// order. Once ctx is cancelled no further jobs start; those jobs are
// reported as failed with the cancellation cause.
func (s *Scheduler) Run(ctx context.Context, jobs []Job) []domain.Outcome {
	outcomes := make([]domain.Outcome, len(jobs))

	var g errgroup.Group
	g.SetLimit(s.limit)

	for i, job := range jobs {
		if ctx.Err() != nil {
			outcomes[i] = notStarted(ctx, job.Label)
			continue
		}

		// Blocks until a slot is free.
		g.Go(func() error {
			if ctx.Err() != nil {
				outcomes[i] = notStarted(ctx, job.Label)
				return nil
			}
			outcomes[i] = runJob(ctx, job)
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}

func runJob(ctx context.Context, job Job) (out domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := zerr.With(zerr.Wrap(domain.ErrJobPanicked, fmt.Sprint(r)), "job", job.Label)
			out = domain.FailedOutcome(job.Label, "Internal error: "+fmt.Sprint(r), err)
		}
	}()
	return job.Run(ctx)
}

func notStarted(ctx context.Context, label string) domain.Outcome {
	cause := context.Cause(ctx)
	err := zerr.With(zerr.Wrap(domain.ErrJobNotStarted, cause.Error()), "job", label)
	return domain.FailedOutcome(label, "Not started: "+cause.Error(), err)
}
