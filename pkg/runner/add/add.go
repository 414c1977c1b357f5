package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/printers"
)

type Add struct {
	Date        string
	Title       string
	Description string
	Image       string
	ShowID      bool

	Timeline *app.Timeline
	Out      io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Timeline == nil {
		return errors.New("can not add, no timeline")
	}

	e, err := n.Timeline.Add(n.Date, n.Title, n.Description, n.Image)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.TitleWithCount("Timeline", n.Timeline.Len())
	pp.Timeline(n.Timeline.Entries()...)
	pp.Detail(e)
	pp.NewLine()

	return nil
}
