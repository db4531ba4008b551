//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks

package orchestration

import "io"

// Term is one value produced during a run.
type Term struct {
	// Lane is the 0-based generator the term came from.
	Lane int
	// Index is the 1-based position of the term in its lane.
	Index int
	// Text is the formatted value.
	Text string
}

// ValuePresenter defines the interface for presenting terms as they are
// produced. Implementations decide the output format (labeled lines, bare
// values, transcript files).
type ValuePresenter interface {
	// PresentTerm writes a single term to out.
	PresentTerm(term Term, out io.Writer)
}

// ValuePresenterFunc is a function adapter that implements ValuePresenter.
type ValuePresenterFunc func(term Term, out io.Writer)

// PresentTerm calls the underlying function.
func (f ValuePresenterFunc) PresentTerm(term Term, out io.Writer) {
	f(term, out)
}

// TermObserver receives lifecycle notifications during a run, typically to
// feed metrics.
type TermObserver interface {
	// OnGeneratorCreated is called when a lane's generator is created.
	OnGeneratorCreated(lane int)
	// OnTerm is called after a term has been pulled and presented.
	OnTerm(lane, index int)
	// OnVerified is called for every term the verifier accepted.
	OnVerified()
}

// NullObserver ignores every notification.
type NullObserver struct{}

// OnGeneratorCreated does nothing.
func (NullObserver) OnGeneratorCreated(int) {}

// OnTerm does nothing.
func (NullObserver) OnTerm(int, int) {}

// OnVerified does nothing.
func (NullObserver) OnVerified() {}

// MultiPresenter fans a term out to several presenters in order.
type MultiPresenter []ValuePresenter

// PresentTerm forwards the term to every presenter.
func (m MultiPresenter) PresentTerm(term Term, out io.Writer) {
	for _, p := range m {
		p.PresentTerm(term, out)
	}
}
