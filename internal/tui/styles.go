package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibgen/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	dimStyle         lipgloss.Style
	laneTitleStyles  [2]lipgloss.Style
	termStyle        lipgloss.Style
	latestTermStyle  lipgloss.Style
	sparklineStyles  [2]lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
	statusErrorStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Lanes[0])

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	termStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	latestTermStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	for i := range laneTitleStyles {
		laneTitleStyles[i] = lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Lanes[i])
		sparklineStyles[i] = lipgloss.NewStyle().
			Foreground(t.Lanes[i])
	}

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Lanes[1]).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5555")).
		Bold(true)
}
