package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Theme holds the colours for the saved dark/light preference.
type Theme struct {
	Dark   bool
	Header *pterm.Style
	Credit *pterm.Style
	Debit  *pterm.Style
	Muted  *pterm.Style
	Accent *pterm.Style
}

func NewTheme(dark bool) Theme {
	if dark {
		return Theme{
			Dark:   true,
			Header: pterm.NewStyle(pterm.FgLightCyan, pterm.Bold),
			Credit: pterm.NewStyle(pterm.FgLightGreen),
			Debit:  pterm.NewStyle(pterm.FgLightRed),
			Muted:  pterm.NewStyle(pterm.FgGray),
			Accent: pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold),
		}
	}
	return Theme{
		Header: pterm.NewStyle(pterm.FgBlue, pterm.Bold),
		Credit: pterm.NewStyle(pterm.FgGreen),
		Debit:  pterm.NewStyle(pterm.FgRed),
		Muted:  pterm.NewStyle(pterm.FgDarkGray),
		Accent: pterm.NewStyle(pterm.FgCyan, pterm.Bold),
	}
}

func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

// Table returns a header table printer in the theme's colours.
func (t Theme) Table() *pterm.TablePrinter {
	return pterm.DefaultTable.WithHasHeader().WithHeaderStyle(t.Header)
}
