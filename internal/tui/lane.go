package tui

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/agbru/fibgen/internal/orchestration"
)

const (
	// maxRecentTerms bounds the terms a lane keeps for display.
	maxRecentTerms = 64
	// laneHeaderLines is the number of panel lines above the term list.
	laneHeaderLines = 4
)

// LaneModel is one generator's panel: its source, the most recent terms and
// the bit-length history.
type LaneModel struct {
	lane   int
	src    orchestration.Source[string]
	recent []string
	count  int
	bits   *RingBuffer
	width  int
	height int
}

// NewLaneModel creates a panel around a fresh source.
func NewLaneModel(lane int, src orchestration.Source[string]) LaneModel {
	return LaneModel{
		lane: lane,
		src:  src,
		bits: NewRingBuffer(maxRecentTerms),
	}
}

// SetSize updates the panel dimensions, borders included.
func (l *LaneModel) SetSize(w, h int) {
	l.width = w
	l.height = h
	if spark := w - 4; spark > 0 {
		l.bits.Resize(spark)
	}
}

// Advance pulls the next term from the lane's source.
func (l *LaneModel) Advance() (orchestration.Term, error) {
	text, err := l.src.Next()
	if err != nil {
		return orchestration.Term{}, err
	}
	l.count++
	l.recent = append(l.recent, text)
	if len(l.recent) > maxRecentTerms {
		l.recent = l.recent[len(l.recent)-maxRecentTerms:]
	}
	l.bits.Push(float64(termBitLen(text)))
	return orchestration.Term{Lane: l.lane, Index: l.count, Text: text}, nil
}

// Count returns the number of terms produced since the lane was created.
func (l LaneModel) Count() int {
	return l.count
}

// Latest returns the most recent term, or "" before the first one.
func (l LaneModel) Latest() string {
	if len(l.recent) == 0 {
		return ""
	}
	return l.recent[len(l.recent)-1]
}

// Stop releases the lane's source.
func (l LaneModel) Stop() {
	orchestration.Release(l.src)
}

// View renders the panel.
func (l LaneModel) View() string {
	innerWidth := max(l.width-4, 1)
	var b strings.Builder

	b.WriteString(laneTitleStyles[l.lane%2].Render(fmt.Sprintf("seq #%d", l.lane+1)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("terms: %d  bits: %d", l.count, int(l.bits.Last()))))
	b.WriteString("\n")
	b.WriteString(sparklineStyles[l.lane%2].Render(RenderBitSparkline(l.bits.Slice())))
	b.WriteString("\n\n")

	visible := l.recent
	if rows := l.height - 2 - laneHeaderLines; rows > 0 && len(visible) > rows {
		visible = visible[len(visible)-rows:]
	}
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("no terms yet"))
	}
	for i, term := range visible {
		line := truncate(term, innerWidth)
		if i == len(visible)-1 {
			b.WriteString(latestTermStyle.Render(line))
		} else {
			b.WriteString(termStyle.Render(line))
			b.WriteString("\n")
		}
	}

	style := panelStyle
	if l.width > 2 {
		style = style.Width(l.width - 2)
	}
	if l.height > 2 {
		style = style.Height(l.height - 2)
	}
	return style.Render(b.String())
}

// termBitLen returns the bit length of a term's integer part. Renderings
// that are not numbers, such as +Inf, count as zero.
func termBitLen(text string) int {
	if i := strings.IndexByte(text, '.'); i >= 0 {
		text = text[:i]
	}
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return 0
	}
	return n.BitLen()
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
