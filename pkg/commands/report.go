package commands

import (

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/report"
	"tableflip.dev/timeline/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recent entries grouped by month",
		Long: `Report lists the entries dated within the specified window, grouped by month.

Examples:
  timeline report
  timeline report --last 3m
  timeline report --last 1y6m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, label, err := timeutil.ParseWindow(last)
			if err != nil {
				return err
			}

			s, err := loadTimeline()
			if err != nil {
				return err
			}
			defer s.Close()

			r := report.Report{
				Window:   window,
				Label:    label,
				ShowID:   io.ShowID,
				Timeline: s.Timeline,
				Out:      cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "window to include (for example 3m, 1y, 2w)")
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
