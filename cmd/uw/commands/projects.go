package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func (c *CLI) newProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the projects in the workspace and their components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects, err := c.app.Projects(cmd.Context(), configFlag(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				_, _ = fmt.Fprintln(out, "No projects found")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"Project", "Shortcut", "Server", "Web", "Path"})
			for _, p := range projects {
				t.AppendRow(table.Row{p.Name, dash(p.Shortcut), dash(p.ServerPath), dash(p.WebPath), p.Path})
			}
			t.Render()
			return nil
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
