// Package snake drives promptui prompts from cobra commands.
package snake

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

// Confirmer asks a yes/no question on a terminal. It satisfies app.Confirmer.
type Confirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm shows prompt and reports whether the user answered yes. Declining,
// or pressing enter for the default, is not an error.
func (c Confirmer) Confirm(prompt string) (bool, error) {
	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
		Stdin:     readCloser(c.In),
		Stdout:    writeCloser(c.Out),
	}
	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, err
	}
}

func readCloser(r io.Reader) io.ReadCloser {
	if r == nil {
		return nil
	}
	return io.NopCloser(r)
}

func writeCloser(w io.Writer) io.WriteCloser {
	if w == nil {
		return nil
	}
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
