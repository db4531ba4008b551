package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/fibgen/internal/orchestration"
	"github.com/agbru/fibgen/internal/ui"
)

// laneIndent is the padding placed after a lane label, so the second lane's
// values stand out from the first.
var laneIndent = [orchestration.LaneCount]string{" ", "       "}

// TermPresenter implements orchestration.ValuePresenter for terminal output.
// In quiet mode it prints bare values, one per line.
type TermPresenter struct {
	Quiet bool
}

// Verify that TermPresenter implements orchestration.ValuePresenter.
var _ orchestration.ValuePresenter = TermPresenter{}

// PresentTerm writes one term line, colorizing the lane label.
func (p TermPresenter) PresentTerm(term orchestration.Term, out io.Writer) {
	if p.Quiet {
		fmt.Fprintln(out, term.Text)
		return
	}
	fmt.Fprintf(out, "%s%s%s%s%s\n",
		ui.LaneColor(term.Lane), laneLabel(term.Lane), ui.ColorReset(),
		indent(term.Lane), term.Text)
}

// FormatTermLine returns the uncolored line for a term:
// "seq #1: 5" for the first lane and "seq #2:       5" for the second.
func FormatTermLine(term orchestration.Term) string {
	return laneLabel(term.Lane) + indent(term.Lane) + term.Text
}

// FormatFloatTerm renders a float term with three fixed decimals.
func FormatFloatTerm(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func laneLabel(lane int) string {
	return "seq #" + strconv.Itoa(lane+1) + ":"
}

func indent(lane int) string {
	if lane >= 0 && lane < len(laneIndent) {
		return laneIndent[lane]
	}
	return " "
}

// padRight returns s followed by spaces up to width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
