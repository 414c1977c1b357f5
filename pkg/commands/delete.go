package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a timeline entry after confirmation",
		Example: `
timeline list --show-id
timeline delete 1704412800000
timeline delete 1704412800000 --yes
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return entryCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, err := options.ParseID(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := loadTimeline()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			if _, err := s.Timeline.Get(id); err != nil {
				return oo.HandleError(fmt.Errorf("entry %d: %w", id, err))
			}
			confirmer, err := co.Confirmer(cmd)
			if err != nil {
				return oo.HandleError(err)
			}

			r := remove.Remove{
				ID:        id,
				Confirmer: confirmer,
				Timeline:  s.Timeline,
				Out:       cmd.OutOrStdout(),
			}
			err = r.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func entryCompletions() []string {
	s, err := loadTimeline()
	if err != nil {
		return nil
	}
	defer s.Close()
	entries := s.Timeline.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strconv.FormatInt(e.ID, 10)+"\t"+e.DisplayDate()+" "+e.Title)
	}
	return out
}
