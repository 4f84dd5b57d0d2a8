package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the Lip Gloss palette for one theme.
type styles struct {
	title, success, pending, accent lipgloss.Style
	muted, err, selected, done      lipgloss.Style
	help, border                    lipgloss.Style

	boxChecked, boxUnchecked string
}

func stylesFor(theme string) styles {
	switch strings.ToLower(theme) {
	case "dark", "neon":
		return styles{
			title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			success:  lipgloss.NewStyle().Foreground(lipgloss.Color("48")),
			pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
			accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			muted:    lipgloss.NewStyle().Faint(true),
			err:      lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true),
			selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			help:     lipgloss.NewStyle().Faint(true),
			border: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1),
			boxChecked:   "◼",
			boxUnchecked: "◻",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return styles{
			title: plain.Bold(true), success: plain, pending: plain, accent: plain,
			muted: plain, err: plain.Bold(true), selected: plain.Reverse(true),
			done: plain.Strikethrough(true), help: plain,
			border: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1),
			boxChecked:   "[x]",
			boxUnchecked: "[ ]",
		}
	default:
		return styles{
			title:    lipgloss.NewStyle().Bold(true),
			success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			muted:    lipgloss.NewStyle().Faint(true),
			err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			help:     lipgloss.NewStyle().Faint(true),
			border: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1),
			boxChecked:   "☑",
			boxUnchecked: "☐",
		}
	}
}
