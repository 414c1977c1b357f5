package commands

import (

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/export"
)

func addRender(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	var (
		path     string
		fragment bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the timeline as HTML",
		Example: `
timeline render > timeline.html
timeline render --file timeline.html
timeline render --fragment
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := loadTimeline()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			e := export.Export{
				Fragment: fragment,
				Path:     path,
				Timeline: s.Timeline,
				Out:      cmd.OutOrStdout(),
			}
			err = e.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Write to this file instead of stdout.")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Only the timeline container, not the whole page.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
