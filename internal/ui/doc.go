// Package ui provides theme and color support for fibgen's output.
// It defines color schemes and provides ANSI escape code functions for consistent
// styling across the CLI and the TUI.
package ui
