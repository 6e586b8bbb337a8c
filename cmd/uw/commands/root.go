// Package commands implements the CLI commands for the uw workspace updater.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/uw/internal/app"
	"go.trai.ch/uw/internal/build"
	"go.trai.ch/uw/internal/core/domain"
)

// CLI represents the command line interface for uw.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	jobs    *jobsValue
}

// Application represents the application logic interface.
type Application interface {
	Update(ctx context.Context, opts app.UpdateOptions) error
	Last(ctx context.Context, configPath string) (*domain.RunReport, error)
	Projects(ctx context.Context, configPath string) ([]domain.Project, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{
		app:  a,
		jobs: &jobsValue{},
	}

	rootCmd := &cobra.Command{
		Use:   "uw [projects...]",
		Short: "Bring workspace projects up to date",
		Long: `uw updates git working copies in parallel. For every selected project it
switches to the trunk branch, pulls fast-forward-only, refreshes Maven and
npm dependencies and switches back to the branch that was checked out.

A project name or shortcut selects the project and all of its components.
Append "s" or "w" to select only the server or web component.
With no arguments every project in the workspace is updated.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runUpdate,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default $UW_CONFIG or ~/.config/uw/config.yaml)")
	rootCmd.Flags().VarP(c.jobs, "jobs", "j", "Maximum number of components updated in parallel")
	rootCmd.Flags().BoolP("verbose", "v", false, "Stream command output")
	rootCmd.Flags().Duration("timeout", domain.DefaultTaskTimeout, "Per-component timeout, 0 disables it")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newLastCmd())
	rootCmd.AddCommand(c.newProjectsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runUpdate(cmd *cobra.Command, args []string) error {
	if c.jobs.warning != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: "+c.jobs.warning)
	}

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := app.UpdateOptions{
		ConfigPath: configPath,
		Targets:    args,
		Jobs:       c.jobs.n,
		Verbose:    verbose,
	}
	if cmd.Flags().Changed("timeout") {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		opts.Timeout = &timeout
	}

	return c.app.Update(cmd.Context(), opts)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func configFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
