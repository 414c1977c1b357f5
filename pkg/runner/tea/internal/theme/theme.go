package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header lipgloss.Style
	Empty  lipgloss.Style
	Footer FooterTheme
	Form   FormTheme
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// FormTheme styles the add-entry overlay.
type FormTheme struct {
	Frame       lipgloss.Style
	Label       lipgloss.Style
	ActiveLabel lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Width(14)

	return Theme{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			Padding(1, 2),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		},
		Form: FormTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(1, 2),
			Label:       label,
			ActiveLabel: label.Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}
