package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	teaui "tableflip.dev/timeline/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	var watch bool

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
timeline ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadTimeline()
			if err != nil {
				return err
			}
			defer s.Close()
			return teaui.Run(cmd.Context(), s.Timeline, watch)
		},
	}

	options.AddWatchArg(cmd, &watch)
	topLevel.AddCommand(cmd)
}
