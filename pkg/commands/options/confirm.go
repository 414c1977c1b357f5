package options

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/snake"
)

// ErrNotInteractive is returned when a confirmation is needed but stdin is
// not a terminal.
var ErrNotInteractive = errors.New("stdin is not a terminal, pass --yes to confirm")

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}

// Confirmer returns the confirmation strategy for cmd: --yes approves,
// a terminal gets a prompt, anything else is refused.
func (o *ConfirmOptions) Confirmer(cmd *cobra.Command) (app.Confirmer, error) {
	if o.Yes {
		return app.Confirmed, nil
	}
	in := cmd.InOrStdin()
	if !IsTerminal(in) {
		return nil, ErrNotInteractive
	}
	return snake.Confirmer{In: in, Out: cmd.OutOrStdout()}, nil
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
