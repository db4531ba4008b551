//go:build !gmp

package fibonacci

import "math/big"

// BigSequence is the arbitrary-precision flavour of Sequence. It never
// overflows; the cost of Next grows with the bit length of the terms.
//
// Build with -tags gmp to keep the state in GMP integers instead of math/big.
type BigSequence struct {
	previous *big.Int
	current  *big.Int
}

// NewBig returns a fresh arbitrary-precision sequence seeded with (1, 1).
func NewBig() *BigSequence {
	return &BigSequence{
		previous: big.NewInt(SeedPrevious),
		current:  big.NewInt(SeedCurrent),
	}
}

// Next returns a copy of the current term and advances the state. The
// returned value is owned by the caller.
func (s *BigSequence) Next() *big.Int {
	term := new(big.Int).Set(s.previous)
	// previous, current = current, previous+current without allocating.
	s.previous.Add(s.previous, s.current)
	s.previous, s.current = s.current, s.previous
	return term
}

// Backend names the integer implementation behind BigSequence.
func Backend() string {
	return "math/big"
}
