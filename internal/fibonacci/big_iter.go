package fibonacci

import (
	"iter"
	"math/big"
)

// All returns a range-over-func view pulling from the same state as Next.
func (s *BigSequence) All() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}

// ProduceBig is the arbitrary-precision counterpart of Produce.
func ProduceBig() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		s := NewBig()
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}
