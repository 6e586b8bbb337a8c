// Package shell provides the command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/uw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger  ports.Logger
	env     map[string]string
	verbose bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithEnvironment adds variables on top of the process environment.
func WithEnvironment(env map[string]string) Option {
	return func(r *Runner) {
		r.env = env
	}
}

// WithVerbose streams command output to the logger line by line.
func WithVerbose(verbose bool) Option {
	return func(r *Runner) {
		r.verbose = verbose
	}
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, opts ...Option) *Runner {
	r := &Runner{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes argv in dir. Output is captured and, when the context
// carries a telemetry vertex, mirrored to the vertex.
func (r *Runner) Run(ctx context.Context, dir string, argv ...string) (domain.CommandResult, error) {
	if len(argv) == 0 {
		return domain.CommandResult{}, zerr.Wrap(domain.ErrEmptyCommand, "nothing to run")
	}

	name := argv[0]
	cmdEnv := resolveEnvironment(os.Environ(), r.env)

	// Names with a path separator run relative to dir.
	executable := name
	if filepath.Base(name) == name {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // commands come from configuration
	// exec.CommandContext sets Args[0] to the resolved path; keep the name as invoked.
	cmd.Args[0] = name
	cmd.Dir = dir
	cmd.Env = cmdEnv

	var stdout, stderr bytes.Buffer
	outs := []io.Writer{&stdout}
	errs := []io.Writer{&stderr}

	if v, ok := ports.VertexFromContext(ctx); ok {
		outs = append(outs, v.Stdout())
		errs = append(errs, v.Stderr())
	}

	var lineWriters []*logWriter
	if r.verbose && r.logger != nil {
		ow := &logWriter{logger: r.logger, level: "info"}
		ew := &logWriter{logger: r.logger, level: "warn"}
		lineWriters = append(lineWriters, ow, ew)
		outs = append(outs, ow)
		errs = append(errs, ew)
	}

	cmd.Stdout = io.MultiWriter(outs...)
	cmd.Stderr = io.MultiWriter(errs...)

	err := cmd.Run()
	for _, w := range lineWriters {
		w.Flush()
	}

	result := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			failure := zerr.With(zerr.Wrap(domain.ErrCommandFailed, strings.Join(argv, " ")), "exit_code", result.ExitCode)
			return result, zerr.With(failure, "dir", dir)
		}
		result.ExitCode = -1
		return result, zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
	}

	return result, nil
}

// RunAsync starts argv in the background. The returned channel receives
// exactly one value and is then closed.
func (r *Runner) RunAsync(ctx context.Context, dir string, argv ...string) <-chan ports.AsyncResult {
	ch := make(chan ports.AsyncResult, 1)
	go func() {
		defer close(ch)
		res, err := r.Run(ctx, dir, argv...)
		ch <- ports.AsyncResult{Result: res, Err: err}
	}()
	return ch
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string

	mu  sync.Mutex
	buf []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return
	}
	if w.level == "info" {
		w.logger.Info(line)
	} else {
		w.logger.Warn(line)
	}
}

// resolveEnvironment merges the configured variables over the system environment.
// PATH entries from the configuration are prepended to the system PATH.
func resolveEnvironment(sysEnv []string, extra map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range extra {
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
				continue
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
