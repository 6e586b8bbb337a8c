// Package updater drives a single component through its update state machine.
package updater

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports"
	"go.trai.ch/zerr"
)

// restoreTimeout bounds switching back to the original branch.
const restoreTimeout = 30 * time.Second

// Updater implements the component update state machine.
type Updater struct {
	vcs       ports.VersionControl
	runner    ports.CommandRunner
	reporter  ports.Reporter
	tracer    ports.Tracer
	telemetry ports.Telemetry

	mavenCommand []string
	npmCommand   []string
	timeout      time.Duration
	now          func() time.Time
}

// Option configures an Updater.
type Option func(*Updater)

// WithTracer creates a span per component update.
func WithTracer(t ports.Tracer) Option {
	return func(u *Updater) { u.tracer = t }
}

// WithTelemetry records a progress vertex per component update.
func WithTelemetry(t ports.Telemetry) Option {
	return func(u *Updater) { u.telemetry = t }
}

// WithCommands overrides the Maven and npm commands. Empty values keep the defaults.
func WithCommands(maven, npm []string) Option {
	return func(u *Updater) {
		if len(maven) > 0 {
			u.mavenCommand = maven
		}
		if len(npm) > 0 {
			u.npmCommand = npm
		}
	}
}

// WithTimeout bounds each component update. Zero disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(u *Updater) { u.timeout = d }
}

// WithClock overrides the time source used for status lines and durations.
func WithClock(now func() time.Time) Option {
	return func(u *Updater) { u.now = now }
}

// New creates an Updater.
func New(vcs ports.VersionControl, runner ports.CommandRunner, reporter ports.Reporter, opts ...Option) *Updater {
	u := &Updater{
		vcs:          vcs,
		runner:       runner,
		reporter:     reporter,
		mavenCommand: domain.DefaultMavenCommand,
		npmCommand:   domain.DefaultNpmCommand,
		timeout:      domain.DefaultTaskTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Update runs task to a terminal state and returns its outcome. Failures are
// contained in the outcome.
func (u *Updater) Update(ctx context.Context, task *domain.ComponentUpdateTask) domain.Outcome {
	label := task.Label()

	var span ports.Span
	if u.tracer != nil {
		ctx, span = u.tracer.Start(ctx, "update "+label)
		span.SetAttribute("uw.project", task.Project)
		span.SetAttribute("uw.component", task.Kind)
		span.SetAttribute("uw.path", task.Path)
		defer span.End()
	}

	var vertex ports.Vertex
	if u.telemetry != nil {
		ctx, vertex = u.telemetry.Record(ctx, label)
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	r := &run{
		u:     u,
		task:  task,
		label: label,
		out: domain.Outcome{
			Label:   label,
			Project: task.Project,
			Kind:    task.Kind,
			Started: u.now(),
		},
	}
	r.execute(ctx)

	out := r.out
	out.State = task.State
	out.Finished = u.now()

	if vertex != nil {
		vertex.Complete(out.Err)
	}
	if span != nil {
		span.SetAttribute("uw.state", string(out.State))
		span.RecordError(out.Err)
	}
	return out
}

// run holds the mutable state of one update.
type run struct {
	u     *Updater
	task  *domain.ComponentUpdateTask
	label string
	out   domain.Outcome

	original      string
	originalLabel string
	switched      bool
}

func (r *run) execute(ctx context.Context) {
	path := r.task.Path

	if !r.advance(domain.StateCheckingRepo, domain.SeverityInfo, "Checking repository") {
		return
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		r.fail(zerr.With(domain.ErrDirectoryMissing, "path", path), "Directory does not exist: "+path)
		return
	}

	status, err := r.u.vcs.Status(ctx, path)
	if err != nil {
		r.fail(r.stepError(ctx, err), "Failed to read repository status: "+detail(err))
		return
	}
	if !status.IsRepo {
		r.skip("Not a git repository")
		return
	}
	if status.IsDirty {
		r.skip("Has uncommitted changes")
		return
	}

	r.original = status.Branch
	r.originalLabel = status.BranchLabel()
	if !r.advance(domain.StateDeterminingBranch, domain.SeverityInfo, "Starting update (current branch: "+r.originalLabel+")") {
		return
	}

	if !status.IsMainBranch {
		if !r.advance(domain.StateSwitchingBranch, domain.SeverityInfo, "Switching to main branch") {
			return
		}
		main := r.u.vcs.MainBranch(ctx, path)
		if err := r.u.vcs.Checkout(ctx, path, main); err != nil {
			wrapped := zerr.With(zerr.Wrap(domain.ErrCheckoutFailed, detail(err)), "branch", main)
			r.fail(r.stepError(ctx, wrapped), "Failed to switch to main branch: "+detail(err))
			return
		}
		r.switched = true
	}

	if !r.advance(domain.StatePulling, domain.SeverityInfo, "Pulling latest changes") {
		return
	}
	if err := r.u.vcs.PullFastForward(ctx, path); err != nil {
		r.restoreBestEffort(ctx)
		r.fail(r.stepError(ctx, zerr.Wrap(domain.ErrPullFailed, detail(err))), "Failed to pull changes: "+detail(err))
		return
	}

	if !r.updatePackages(ctx) {
		return
	}

	if r.switched {
		if !r.advance(domain.StateRestoringBranch, domain.SeverityInfo, "Switching back to "+r.originalLabel) {
			return
		}
		if err := r.restore(ctx); err != nil {
			wrapped := zerr.With(zerr.Wrap(domain.ErrRestoreFailed, detail(err)), "branch", r.original)
			r.fail(wrapped, "Failed to switch back to "+r.originalLabel+": "+detail(err))
			return
		}
	}

	msg := "Update completed successfully"
	if len(r.out.Warnings) > 0 {
		msg = "Update completed with warnings"
	}
	r.advance(domain.StateSucceeded, domain.SeveritySuccess, msg)
}

// updatePackages runs the detected package managers. Command failures become
// warnings; only an expired deadline fails the task.
func (r *run) updatePackages(ctx context.Context) bool {
	managers := DetectPackageManagers(r.task.Kind, r.task.Path)

	msg := "No package manager detected"
	if len(managers) > 0 {
		names := make([]string, len(managers))
		for i, m := range managers {
			names[i] = m.String()
		}
		msg = "Updating packages (" + strings.Join(names, ", ") + ")"
	}
	if !r.advance(domain.StateUpdatingPackages, domain.SeverityInfo, msg) {
		return false
	}

	// Managers run side by side. Every process has exited before the branch
	// is touched again.
	pending := make([]<-chan ports.AsyncResult, len(managers))
	for i, m := range managers {
		argv := r.u.npmCommand
		if m == Maven {
			argv = r.u.mavenCommand
		}
		pending[i] = r.u.runner.RunAsync(ctx, r.task.Path, argv...)
	}

	results := make([]ports.AsyncResult, len(managers))
	for i := range pending {
		results[i] = <-pending[i]
	}

	if len(managers) > 0 && ctx.Err() != nil {
		r.restoreBestEffort(ctx)
		r.fail(r.stepError(ctx, context.Cause(ctx)), "Package update interrupted: "+context.Cause(ctx).Error())
		return false
	}
	for i, m := range managers {
		res, err := results[i].Result, results[i].Err
		if err != nil || !res.Success() {
			warning := packageWarning(m, res, err)
			r.out.Warnings = append(r.out.Warnings, warning)
			r.report(domain.SeverityWarning, warning)
		}
	}
	return true
}

func packageWarning(m PackageManager, res domain.CommandResult, err error) string {
	base := "Maven dependency update failed"
	if m == Npm {
		base = "npm install failed"
	}
	if res.ExitCode > 0 {
		return fmt.Sprintf("%s (exit code %d)", base, res.ExitCode)
	}
	if err != nil {
		return base + ": " + detail(err)
	}
	return base
}

// restore switches back to the original branch. It runs detached from the
// task deadline and from cancellation so an interrupted task still leaves the
// developer's branch checked out.
func (r *run) restore(ctx context.Context) error {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
	defer cancel()

	if err := r.u.vcs.Checkout(rctx, r.task.Path, r.original); err != nil {
		return err
	}
	r.switched = false
	return nil
}

// restoreBestEffort restores the branch after a failure. Its result does not
// change the verdict.
func (r *run) restoreBestEffort(ctx context.Context) {
	if !r.switched {
		return
	}
	if err := r.restore(ctx); err != nil {
		r.report(domain.SeverityWarning, "Could not switch back to "+r.originalLabel+": "+detail(err))
	}
}

// stepError converts err into a timeout error when the task deadline expired.
func (r *run) stepError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		wrapped := zerr.With(zerr.Wrap(domain.ErrTaskTimeout, r.u.timeout.String()), "state", string(r.task.State))
		if err != nil {
			return errors.Join(wrapped, err)
		}
		return wrapped
	}
	return err
}

func (r *run) advance(next domain.TaskState, sev domain.Severity, msg string) bool {
	if err := r.task.Advance(next); err != nil {
		r.out.Err = err
		r.out.Reason = "Internal error: " + err.Error()
		r.task.State = domain.StateFailed
		r.report(domain.SeverityError, r.out.Reason)
		return false
	}
	r.report(sev, msg)
	return true
}

func (r *run) fail(err error, msg string) {
	if errors.Is(err, domain.ErrTaskTimeout) {
		msg = fmt.Sprintf("Timed out after %s (%s)", r.u.timeout, msg)
	}
	r.out.Err = err
	r.out.Reason = msg
	r.advance(domain.StateFailed, domain.SeverityError, msg)
}

func (r *run) skip(msg string) {
	r.out.Reason = msg
	r.advance(domain.StateSkipped, domain.SeveritySkipped, msg)
}

func (r *run) report(sev domain.Severity, msg string) {
	r.u.reporter.Report(domain.Event{
		Time:     r.u.now(),
		Severity: sev,
		Label:    r.label,
		Message:  msg,
	})
}

// detail returns the most specific text of err.
func detail(err error) string {
	if err == nil {
		return "unknown error"
	}
	return strings.TrimSpace(err.Error())
}
