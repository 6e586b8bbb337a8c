// Package console renders update progress and summaries for a terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"go.trai.ch/uw/internal/core/domain"
)

// Reporter implements ports.Reporter. Lines from concurrent tasks are
// written whole and never interleave.
type Reporter struct {
	mu      sync.Mutex
	out     *termenv.Output
	styles  styles
	profile termenv.Profile
	loc     *time.Location
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithProfile forces a colour profile.
func WithProfile(p termenv.Profile) Option {
	return func(r *Reporter) {
		r.profile = p
	}
}

// WithLocation sets the time zone used for timestamps.
func WithLocation(loc *time.Location) Option {
	return func(r *Reporter) {
		r.loc = loc
	}
}

// New creates a Reporter writing to w, or stdout when w is nil.
func New(w io.Writer, opts ...Option) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	r := &Reporter{
		profile: ColorProfile(),
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.out = termenv.NewOutput(w, termenv.WithProfile(r.profile))
	r.styles = newStyles(lipgloss.NewRenderer(w, termenv.WithProfile(r.profile)))
	return r
}

// Begin writes the batch header.
func (r *Reporter) Begin(jobs, targets int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("Starting workspace update with %d parallel jobs...\n", jobs)
	r.printf("Projects to process: %d\n", targets)
	r.printf("%s\n", Rule)
}

// Report writes one status line: "[HH:MM:SS] <glyph> <label>: <message>".
func (r *Reporter) Report(ev domain.Event) {
	styled := r.styles.render(ev.Severity)

	ts := ev.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.printf("[%s] %s %s: %s\n", ts.In(r.loc).Format(time.TimeOnly), styled, ev.Label, ev.Message)
}

// Summary writes the totals followed by a table of every component that
// did not update cleanly.
func (r *Reporter) Summary(stats domain.UpdateStats, outcomes []domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("%s\n", Rule)
	r.printf("Workspace update completed!\n")
	r.printf("Total projects: %d\n", stats.TotalProjects)
	r.printf("Successful: %d\n", stats.SuccessfulUpdates)
	r.printf("Failed: %d\n", stats.FailedUpdates)
	r.printf("Skipped: %d\n", stats.SkippedProjects)
	r.printf("Duration: %d seconds\n", int64(stats.Duration()/time.Second))

	if tbl := attentionTable(outcomes); tbl != "" {
		r.printf("\n%s\n", tbl)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// attentionTable renders failed, skipped and warned components, or returns
// an empty string when every component updated cleanly.
func attentionTable(outcomes []domain.Outcome) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Component", "Result", "Detail"})

	rows := 0
	for _, o := range outcomes {
		var result, detail string
		switch {
		case o.State == domain.StateFailed:
			result, detail = "failed", o.Message()
		case o.State == domain.StateSkipped:
			result, detail = "skipped", o.Message()
		case len(o.Warnings) > 0:
			result, detail = "warnings", strings.Join(o.Warnings, "; ")
		default:
			continue
		}
		t.AppendRow(table.Row{o.Label, result, detail})
		rows++
	}

	if rows == 0 {
		return ""
	}
	t.SetStyle(table.StyleRounded)
	return t.Render()
}
