package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/uw/internal/adapters/logger"
	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*logger.Logger)
		want  string
		level string
	}{
		{name: "Info", log: func(l *logger.Logger) { l.Info("pulling alpha") }, want: "pulling alpha", level: "INFO"},
		{name: "Warn", log: func(l *logger.Logger) { l.Warn("npm printed warnings") }, want: "npm printed warnings", level: "WARN"},
		{name: "Error", log: func(l *logger.Logger) { l.Error(os.ErrPermission) }, want: "permission denied", level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderr(t, func() {
				tt.log(logger.New())
			})
			assert.Contains(t, output, tt.want)
			assert.Contains(t, output, tt.level)
		})
	}
}

func TestLogger_ErrorKeepsMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(zerr.With(zerr.Wrap(domain.ErrPullFailed, "not possible to fast-forward"), "path", "/w/alpha"))

	out := buf.String()
	assert.Contains(t, out, "not possible to fast-forward")
	assert.True(t, strings.HasPrefix(out, "time="))
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("one")
	lg.SetOutput(&second)
	lg.Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}
