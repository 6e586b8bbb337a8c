// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/uw/internal/core/domain"
)

// CommandRunner executes external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes argv in dir and waits for it to finish.
	//
	// A non-zero exit status is reported through CommandResult.ExitCode together
	// with a non-nil error wrapping domain.ErrCommandFailed. An error with a zero
	// result means the program could not be started.
	Run(ctx context.Context, dir string, argv ...string) (domain.CommandResult, error)

	// RunAsync starts argv in dir and returns at once. The channel receives
	// exactly one AsyncResult and is then closed.
	RunAsync(ctx context.Context, dir string, argv ...string) <-chan AsyncResult
}

// AsyncResult carries the result of CommandRunner.RunAsync.
type AsyncResult struct {
	Result domain.CommandResult
	Err    error
}
