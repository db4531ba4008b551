package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibgen/internal/format"
)

// HeaderModel renders the top bar: title, version, elapsed time and heap usage.
type HeaderModel struct {
	startTime time.Time
	version   string
	heap      uint64
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// SetHeap records the latest heap reading.
func (h *HeaderModel) SetHeap(bytes uint64) {
	h.heap = bytes
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "fibgen"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)
	pipe := dimStyle.Render(" | ")

	elapsed := fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(time.Since(h.startTime)))
	heap := fmt.Sprintf("Heap: %s", format.FormatBytes(h.heap))

	row := title + pipe + dimStyle.Render(elapsed) + pipe + dimStyle.Render(heap)
	gap := h.width - 2 - lipgloss.Width(row)
	return headerStyle.Render(row + spaces(gap))
}

// FooterModel renders the key help line and the last error, if any.
type FooterModel struct {
	bindings []key.Binding
	err      error
	width    int
}

// NewFooterModel creates a footer listing the given bindings.
func NewFooterModel(bindings []key.Binding) FooterModel {
	return FooterModel{bindings: bindings}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
}

// SetError shows err in place of the help line; nil clears it.
func (f *FooterModel) SetError(err error) {
	f.err = err
}

// View renders the footer.
func (f FooterModel) View() string {
	if f.err != nil {
		return statusErrorStyle.Render(" Error: " + f.err.Error())
	}
	parts := make([]string, 0, len(f.bindings))
	for _, b := range f.bindings {
		help := b.Help()
		parts = append(parts, footerKeyStyle.Render(help.Key)+" "+footerDescStyle.Render(help.Desc))
	}
	return " " + strings.Join(parts, dimStyle.Render("  •  "))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
