package teaui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/timeline/pkg/app"
)

// Run launches the Bubble Tea UI over t. With watch set, writes by other
// processes show up live.
func Run(ctx context.Context, t *app.Timeline, watch bool) error {
	if t == nil {
		return fmt.Errorf("ui requires a timeline")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if watch {
		if err := t.Watch(ctx); err != nil {
			return fmt.Errorf("watch timeline: %w", err)
		}
	}

	p := tea.NewProgram(New(ctx, t), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
