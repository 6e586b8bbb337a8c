// Package main is the entry point for the uw workspace updater.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/uw/cmd/uw/commands"
	"go.trai.ch/uw/internal/app"
	"go.trai.ch/uw/internal/core/domain"
	_ "go.trai.ch/uw/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, graftProvider))
}

func graftProvider(ctx context.Context) (*app.Components, error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, err
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, provider ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// The summary already reported every failed component.
		if errors.Is(err, domain.ErrUpdateFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
