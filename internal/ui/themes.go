package ui

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme defines a color scheme for CLI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Lanes holds one accent per generator lane; lanes past the end reuse
	// the palette cyclically.
	Lanes []string
	// Label is used for the "seq #N:" prefixes and other secondary text.
	Label string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Lanes:   []string{"\033[38;5;208m", "\033[38;5;39m"}, // Orange, bright blue
		Label:   "\033[38;5;245m",                            // Grey
		Success: "\033[38;5;82m",
		Warning: "\033[38;5;220m",
		Error:   "\033[38;5;196m",
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set, --no-color is given or stdout is not a terminal.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines lipgloss-compatible colors for the TUI dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Lanes   [2]lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme mirrors DarkTheme's lane accents.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#666666"),
		Lanes:   [2]lipgloss.TerminalColor{lipgloss.Color("#FF8C00"), lipgloss.Color("#4488FF")},
		Success: lipgloss.Color("#9ece6a"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorTUITheme renders text with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Lanes:   [2]lipgloss.TerminalColor{lipgloss.NoColor{}, lipgloss.NoColor{}},
		Success: lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// GetCurrentTUITheme returns the TUI palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// InitTheme selects the theme for this process. Colors are disabled when
// noColor is set, when the NO_COLOR environment variable exists
// (https://no-color.org/), or when stdout is not a terminal.
func InitTheme(noColor bool) {
	useColor := !noColor && colorAllowedByEnv() && term.IsTerminal(int(os.Stdout.Fd()))

	themeMutex.Lock()
	defer themeMutex.Unlock()
	if useColor {
		currentTheme = DarkTheme
	} else {
		currentTheme = NoColorTheme
	}
}

func colorAllowedByEnv() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return !exists
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
