package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	status  lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	empty   lipgloss.Style
	credit  lipgloss.Style
	debit   lipgloss.Style
	border  lipgloss.Color
	header  lipgloss.Color
	selectF lipgloss.Color
	selectB lipgloss.Color
}

func newStyles(dark bool) styles {
	if dark {
		return styles{
			title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A8DADC")),
			status:  lipgloss.NewStyle().Foreground(lipgloss.Color("#9C89B8")),
			help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F94144")),
			empty:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#F4A261")),
			credit:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2A9D8F")),
			debit:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E76F51")),
			border:  lipgloss.Color("240"),
			header:  lipgloss.Color("#A8DADC"),
			selectF: lipgloss.Color("#1D3557"),
			selectB: lipgloss.Color("#A8DADC"),
		}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#457B9D")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("#457B9D")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E63946")),
		empty:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#E76F51")),
		credit:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00A896")),
		debit:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F94144")),
		border:  lipgloss.Color("250"),
		header:  lipgloss.Color("#1D3557"),
		selectF: lipgloss.Color("#FFFFFF"),
		selectB: lipgloss.Color("#457B9D"),
	}
}
