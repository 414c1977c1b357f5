package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	var (
		verbose bool
		month   string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List timeline entries in date order",
		Example: `
timeline list
timeline list --show-id --verbose
timeline list -o yaml
timeline list --month 2024-01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := oo.Format()
			if err != nil {
				return oo.HandleError(err)
			}

			l := list.List{
				ShowID:  io.ShowID,
				Verbose: verbose,
				Format:  format,
			}
			if month != "" {
				m, err := time.Parse("2006-01", month)
				if err != nil {
					return oo.HandleError(fmt.Errorf("invalid --month %q, expected YYYY-MM", month))
				}
				l.Month = &m
			}

			s, err := loadTimeline()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			l.Timeline = s.Timeline
			l.Out = cmd.OutOrStdout()
			err = l.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddFormatArg(cmd, oo)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include descriptions and images.")
	cmd.Flags().StringVar(&month, "month", "", `Show a calendar of one month, example: --month="2024-01".`)

	topLevel.AddCommand(cmd)
}
