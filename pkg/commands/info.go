package commands

import (

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the timeline and where it is stored.",
		Example: `
timeline info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadTimeline()
			if err != nil {
				return err
			}
			defer s.Close()

			i := info.Info{
				Config:   s.Config,
				Timeline: s.Timeline,
				Out:      cmd.OutOrStdout(),
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
