// Package generator provides suspend/resume generators built from producer
// functions. The producer runs as a coroutine: it executes until its next
// yield, hands the value over, and stays suspended until the next request.
package generator

import (
	"errors"
	"fmt"
	"iter"
	"runtime/debug"
)

// ErrFinished is returned by Next once the producer has returned, panicked or
// been stopped.
var ErrFinished = errors.New("generator finished")

// PanicError carries a panic raised inside a producer back to the caller of
// Next. Stack is captured on the producer's side and shows the frames that
// panicked.
type PanicError struct {
	Value any
	Stack []byte
}

// Error returns the panic value formatted as text.
func (p *PanicError) Error() string {
	return fmt.Sprintf("generator panicked: %v", p.Value)
}

// Unwrap returns the panic value when it is an error.
func (p *PanicError) Unwrap() error {
	err, ok := p.Value.(error)
	if !ok {
		return nil
	}
	return err
}

// Generator pulls values from a producer one at a time. Nothing runs until
// the first call to Next. A Generator is owned by a single consumer and is not
// safe for concurrent use.
type Generator[T any] struct {
	next     func() (T, bool)
	stop     func()
	finished bool
}

// New wraps body into a suspended generator.
func New[T any](body iter.Seq[T]) *Generator[T] {
	next, stop := iter.Pull(capturePanics(body))
	return &Generator[T]{next: next, stop: stop}
}

// capturePanics records the stack of a panic while still on the producer's
// frames, before iter.Pull carries the panic over to the consumer.
func capturePanics[T any](body iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer func() {
			if r := recover(); r != nil {
				panic(&PanicError{Value: r, Stack: debug.Stack()})
			}
		}()
		body(yield)
	}
}

// Next resumes the producer until it yields. It returns ErrFinished when the
// producer has returned, and a *PanicError the one time a producer panic is
// observed; every later call returns ErrFinished.
func (g *Generator[T]) Next() (value T, err error) {
	if g.finished {
		return value, ErrFinished
	}

	defer func() {
		if r := recover(); r != nil {
			g.finish()
			pe, ok := r.(*PanicError)
			if !ok {
				pe = &PanicError{Value: r, Stack: debug.Stack()}
			}
			var zero T
			value, err = zero, pe
		}
	}()

	v, ok := g.next()
	if !ok {
		g.finish()
		return value, ErrFinished
	}
	return v, nil
}

// Finished reports whether the generator can no longer produce values.
func (g *Generator[T]) Finished() bool {
	return g.finished
}

// Stop abandons the producer. It is safe to call more than once.
func (g *Generator[T]) Stop() {
	g.finish()
}

// All returns the remaining values as an iterator. Iteration ends when the
// generator finishes; errors other than ErrFinished are dropped, use Next to
// observe them.
func (g *Generator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := g.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func (g *Generator[T]) finish() {
	if g.finished {
		return
	}
	g.finished = true
	g.stop()
}
