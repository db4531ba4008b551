package fibonacci

import "iter"

// Number is the set of built-in numeric types a Sequence can be instantiated
// with. Integer flavours wrap silently on overflow; float flavours lose
// exactness past MaxExactFloat64Term and turn into +Inf past MaxFloat64Term.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Sequence is a lazy, unbounded Fibonacci sequence. Nothing is computed until
// Next is called, and each call costs O(1) time with O(1) stored state.
//
// A Sequence is owned by a single consumer and is not safe for concurrent
// use. Distinct instances never share state.
type Sequence[T Number] struct {
	previous T
	current  T
}

// New returns a fresh sequence seeded with (1, 1). Its first Next returns 1
// no matter how many other sequences exist or how far they have advanced.
func New[T Number]() *Sequence[T] {
	return &Sequence[T]{previous: SeedPrevious, current: SeedCurrent}
}

// Next returns the current term and advances the state by the recurrence.
// It never fails: successive calls return 1, 1, 2, 3, 5, 8, 13, ...
func (s *Sequence[T]) Next() T {
	term := s.previous
	s.previous, s.current = s.current, s.previous+s.current
	return term
}

// All returns a range-over-func view of the sequence. The iterator pulls from
// the same state as Next, so terms consumed through it are not produced again.
// The sequence is infinite: the loop body must break.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// Produce returns the Fibonacci sequence as a producer function: each range
// over the returned iterator starts again from the seed terms. This is the
// body a coroutine generator runs.
func Produce[T Number]() iter.Seq[T] {
	return func(yield func(T) bool) {
		var previous, current T = SeedPrevious, SeedCurrent
		for {
			if !yield(previous) {
				return
			}
			previous, current = current, previous+current
		}
	}
}

// Take consumes at most n values from seq and returns them in order.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
