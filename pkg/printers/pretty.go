package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/timeline/pkg/entry"
)

const (
	titleWidth       = 48
	descriptionWidth = 64
)

type PrettyPrint struct {
	ShowID  bool
	Verbose bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1704412800000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Timeline prints entries as a table, one row per entry, in list order.
func (pp *PrettyPrint) Timeline(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.FgCyan)
	b := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		title := b.Sprint(runewidth.Truncate(e.Title, titleWidth, "…"))
		if pp.ShowID {
			id, date, _ := e.Row()
			tbl.AddRow(y.Sprint(id), d.Sprint(date), title)
		} else {
			tbl.AddRow(d.Sprint(e.DisplayDate()), title)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if pp.Verbose {
		for _, e := range entries {
			pp.Detail(e)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Detail prints one entry with its description and image.
func (pp *PrettyPrint) Detail(e *entry.Entry) {
	if e == nil {
		return
	}
	h := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = fmt.Fprintln(pp.out(), "")
	_, _ = h.Fprintf(pp.out(), "%s  %s\n", e.DisplayDate(), e.Title)
	if pp.ShowID {
		_, _ = f.Fprintf(pp.out(), "id: %d\n", e.ID)
	}
	if desc := strings.TrimSpace(e.Description); desc != "" {
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(desc, descriptionWidth))
	}
	if e.HasImage() {
		_, _ = f.Fprintf(pp.out(), "image: %s\n", e.Image)
	}
}
