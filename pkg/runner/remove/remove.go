package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/printers"
)

type Remove struct {
	ID        int64
	Confirmer app.Confirmer

	Timeline *app.Timeline
	Out      io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Timeline == nil {
		return errors.New("can not delete, no timeline")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	e, err := n.Timeline.Get(n.ID)
	if err != nil {
		return fmt.Errorf("entry %d: %w", n.ID, err)
	}

	pp := printers.PrettyPrint{ShowID: true, Out: out}
	pp.Detail(e)
	pp.NewLine()

	removed, err := n.Timeline.Delete(n.ID, n.Confirmer)
	if err != nil {
		return err
	}
	if !removed {
		_, _ = fmt.Fprintln(out, "Kept.")
		return nil
	}

	pp.ShowID = false
	pp.TitleWithCount("Timeline", n.Timeline.Len())
	pp.Timeline(n.Timeline.Entries()...)
	return nil
}
