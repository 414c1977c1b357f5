package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/store"
)

type Info struct {
	Config   store.Config
	Timeline *app.Timeline
	Out      io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv("TIMELINE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TIMELINE_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "TIMELINE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:   ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.driver: ", n.Config.Driver())
	_, _ = fmt.Fprintln(out, "Config.key:    ", n.Config.Key())
	_, _ = fmt.Fprintln(out, "Config.addr:   ", n.Config.Addr())

	if n.Timeline == nil {
		return fmt.Errorf("failed to load timeline")
	}

	count := n.Timeline.Len()
	switch count {
	case 0:
		_, _ = fmt.Fprintln(out, "Entries:        none")
	case 1:
		_, _ = fmt.Fprintln(out, "Entries:        1 entry")
	default:
		_, _ = fmt.Fprintf(out, "Entries:        %d entries\n", count)
	}
	return nil
}
