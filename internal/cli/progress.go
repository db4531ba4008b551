//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibgen/internal/orchestration"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts a terminal spinner so the progress display can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() {
	rs.s.Start()
}

func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix holds the spinner's lock since the animation goroutine reads
// the suffix concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressPresenter shows a spinner with a progress bar while terms are
// produced. It is used on stderr when stdout is redirected, so the terms
// themselves stay clean.
type ProgressPresenter struct {
	spinner Spinner
	total   int
	count   int
}

// Verify that ProgressPresenter implements orchestration.ValuePresenter.
var _ orchestration.ValuePresenter = (*ProgressPresenter)(nil)

// StartProgress starts a spinner writing to w for a run of total terms.
func StartProgress(total int, w io.Writer) *ProgressPresenter {
	p := &ProgressPresenter{spinner: newSpinner(spinner.WithWriter(w)), total: total}
	p.spinner.UpdateSuffix(p.suffix())
	p.spinner.Start()
	return p
}

// PresentTerm advances the progress display by one term.
func (p *ProgressPresenter) PresentTerm(orchestration.Term, io.Writer) {
	p.count++
	p.spinner.UpdateSuffix(p.suffix())
}

// Stop halts the spinner.
func (p *ProgressPresenter) Stop() {
	p.spinner.Stop()
}

func (p *ProgressPresenter) suffix() string {
	ratio := 0.0
	if p.total > 0 {
		ratio = float64(p.count) / float64(p.total)
	}
	return fmt.Sprintf(" %s %d/%d terms", progressBar(ratio, ProgressBarWidth), p.count, p.total)
}

// progressBar generates a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
