package list

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/printers"
)

type List struct {
	ShowID  bool
	Verbose bool
	Format  printers.Format
	// Month limits output to a calendar of that month when set.
	Month *time.Time

	Timeline *app.Timeline
	Out      io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Timeline == nil {
		return errors.New("can not list, no timeline")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	entries := n.Timeline.Entries()

	switch n.Format {
	case printers.FormatJSON, printers.FormatYAML:
		return printers.Structured(out, n.Format, entries)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Verbose: n.Verbose, Out: out}
	if n.Month != nil {
		pp.Month(*n.Month, entries...)
		return nil
	}
	pp.TitleWithCount("Timeline", len(entries))
	pp.Timeline(entries...)
	return nil
}
