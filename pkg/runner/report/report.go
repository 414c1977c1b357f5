package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/printers"
	"tableflip.dev/timeline/pkg/timeutil"
)

// Report prints the entries dated inside a window ending now, one section
// per month.
type Report struct {
	Window timeutil.Window
	Label  string
	ShowID bool
	Now    func() time.Time

	Timeline *app.Timeline
	Out      io.Writer
}

func (n *Report) Do(ctx context.Context) error {
	if n.Timeline == nil {
		return errors.New("can not report, no timeline")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	until := now()
	result := n.Timeline.Report(n.Window.Before(until), until)

	_, _ = fmt.Fprintf(out, "Report · last %s (%s → %s)\n",
		n.Label,
		result.Since.Format("2006-01-02"),
		result.Until.Format("2006-01-02"))

	if result.Total == 0 {
		_, _ = fmt.Fprintln(out, "  No entries in this window.")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	for _, section := range result.Sections {
		pp.NewLine()
		pp.TitleWithCount(section.Month.Format("January 2006"), len(section.Entries))
		pp.Timeline(section.Entries...)
	}
	if result.Undated > 0 {
		_, _ = fmt.Fprintf(out, "\n%d undated entries not included.\n", result.Undated)
	}
	return nil
}
