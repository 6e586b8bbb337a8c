package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Print the summary of the previous update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Last(cmd.Context(), configFlag(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Run %s finished at %s\n",
				report.RunID, report.Stats.EndTime.Format(time.DateTime))
			if report.OutputDir != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Command output: %s\n", report.OutputDir)
			}
			return nil
		},
	}
}
