package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/commands/options"
	"tableflip.dev/timeline/pkg/store"
)

var (
	so = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: base.Wrap80("Record, view and delete dated timeline entries."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddStoreArgs(cmd, so)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addDelete(topLevel)
	addRender(topLevel)
	addReport(topLevel)
	addServe(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// session is an open timeline and the storage behind it.
type session struct {
	Config   store.Config
	KV       store.KV
	Timeline *app.Timeline
}

func (s *session) Close() {
	if err := s.KV.Close(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "timeline: close store: %v\n", err)
	}
}

// loadTimeline opens the configured store and reads the timeline from it.
func loadTimeline() (*session, error) {
	cfg, err := so.Config()
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	t, err := app.Load(kv, app.WithKey(cfg.Key()))
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return &session{Config: cfg, KV: kv, Timeline: t}, nil
}
