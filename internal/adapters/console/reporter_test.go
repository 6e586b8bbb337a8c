package console_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/uw/internal/adapters/console"
	"go.trai.ch/uw/internal/core/domain"
)

var base = time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)

func newTestReporter(t *testing.T) (*console.Reporter, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return console.New(buf, console.WithProfile(termenv.Ascii), console.WithLocation(time.UTC)), buf
}

func TestReporter_StatusLines(t *testing.T) {
	r, buf := newTestReporter(t)

	r.Begin(4, 3)
	r.Report(domain.Event{Time: base, Severity: domain.SeverityInfo, Label: "alpha", Message: "Starting update (current branch: feature/login)"})
	r.Report(domain.Event{Time: base.Add(time.Second), Severity: domain.SeverityInfo, Label: "alpha", Message: "Switching to main branch"})
	r.Report(domain.Event{Time: base.Add(2 * time.Second), Severity: domain.SeveritySkipped, Label: "gamma", Message: "Has uncommitted changes"})
	r.Report(domain.Event{Time: base.Add(3 * time.Second), Severity: domain.SeverityWarning, Label: "beta-server", Message: "Maven update reported problems"})
	r.Report(domain.Event{Time: base.Add(4 * time.Second), Severity: domain.SeverityError, Label: "beta-web", Message: "Not a git repository"})
	r.Report(domain.Event{Time: base.Add(65 * time.Second), Severity: domain.SeveritySuccess, Label: "alpha", Message: "Update completed successfully"})

	g := goldie.New(t)
	g.Assert(t, "status_lines", buf.Bytes())
}

func TestReporter_Summary(t *testing.T) {
	r, buf := newTestReporter(t)

	outcomes := []domain.Outcome{
		{Label: "alpha", State: domain.StateSucceeded},
		{Label: "beta-server", State: domain.StateSucceeded, Warnings: []string{"mvn exited with status 1"}},
		{Label: "beta-web", State: domain.StateFailed, Err: errors.New("Not a git repository")},
		{Label: "gamma", State: domain.StateSkipped, Reason: "Has uncommitted changes"},
	}
	stats := domain.Aggregate(outcomes, base, base.Add(42*time.Second))

	r.Summary(stats, outcomes)

	g := goldie.New(t)
	g.Assert(t, "summary", buf.Bytes())
}

func TestReporter_SummaryAllClean(t *testing.T) {
	r, buf := newTestReporter(t)

	outcomes := []domain.Outcome{{Label: "alpha", State: domain.StateSucceeded}}
	r.Summary(domain.Aggregate(outcomes, base, base.Add(1500*time.Millisecond)), outcomes)

	g := goldie.New(t)
	g.Assert(t, "summary_clean", buf.Bytes())
}

func TestReporter_ColouredGlyph(t *testing.T) {
	buf := &bytes.Buffer{}
	r := console.New(buf, console.WithProfile(termenv.ANSI), console.WithLocation(time.UTC))

	r.Report(domain.Event{Time: base, Severity: domain.SeverityError, Label: "beta", Message: "Failed to pull changes"})

	out := buf.String()
	assert.Contains(t, out, "\x1b[1;", "error glyphs are bold")
	assert.Contains(t, out, console.Cross)
	assert.True(t, strings.HasPrefix(out, "[09:15:00] "))
	assert.True(t, strings.HasSuffix(out, " beta: Failed to pull changes\n"))
}

func TestReporter_ConcurrentLinesDoNotInterleave(t *testing.T) {
	r, buf := newTestReporter(t)

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				r.Report(domain.Event{
					Time:     base,
					Severity: domain.SeverityInfo,
					Label:    fmt.Sprintf("project-%d", w),
					Message:  fmt.Sprintf("line %d", i),
				})
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, writers*perWriter)
	for _, line := range lines {
		assert.Regexp(t, `^\[09:15:00\] ℹ project-\d: line \d+$`, line)
	}
}

func TestColorProfile(t *testing.T) {
	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("CI", "true")
		assert.Equal(t, termenv.Ascii, console.ColorProfile())
	})

	t.Run("CI without a terminal gets ANSI", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CI", "true")
		assert.Equal(t, termenv.ANSI, console.ColorProfile())
	})
}
