package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/add"
	"tableflip.dev/timeline/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to the timeline",
		Example: `
timeline add --date 2024-01-05 --title Launch
timeline add -d 2023-06-01 -t Kickoff --description "Project starts" --image https://example.com/kickoff.png
timeline add -i
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if eo.Interactive {
				return snake.PromptFlags(cmd, options.EntryFlags...)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if strings.TrimSpace(eo.Date) == "" || strings.TrimSpace(eo.Title) == "" {
				return oo.HandleError(errors.New("--date and --title are required"))
			}

			s, err := loadTimeline()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				Date:        strings.TrimSpace(eo.Date),
				Title:       strings.TrimSpace(eo.Title),
				Description: strings.TrimSpace(eo.Description),
				Image:       strings.TrimSpace(eo.Image),
				ShowID:      io.ShowID,
				Timeline:    s.Timeline,
				Out:         cmd.OutOrStdout(),
			}
			err = a.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	snake.MarkRequired(cmd, "date")
	snake.MarkRequired(cmd, "title")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
