package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/timeline/pkg/app"
)

// Export writes the rendered timeline, either the whole page or just the
// container markup.
type Export struct {
	Fragment bool
	// Path is the output file; empty writes to Out.
	Path string

	Timeline *app.Timeline
	Out      io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Timeline == nil {
		return errors.New("can not render, no timeline")
	}

	markup := n.Timeline.RenderPage()
	if n.Fragment {
		markup = n.Timeline.Render()
	}

	if n.Path != "" {
		if err := os.WriteFile(n.Path, []byte(markup+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", n.Path, err)
		}
		return nil
	}

	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintln(out, markup)
	return err
}
