//go:build gmp

package fibonacci

import (
	"math/big"

	"github.com/ncw/gmp"
)

// BigSequence is the arbitrary-precision flavour of Sequence, backed by GMP.
// Terms are converted to math/big on the way out so callers see the same API
// with or without the gmp build tag.
type BigSequence struct {
	previous *gmp.Int
	current  *gmp.Int
}

// NewBig returns a fresh arbitrary-precision sequence seeded with (1, 1).
func NewBig() *BigSequence {
	return &BigSequence{
		previous: gmp.NewInt(SeedPrevious),
		current:  gmp.NewInt(SeedCurrent),
	}
}

// Next returns a copy of the current term and advances the state. The
// returned value is owned by the caller.
func (s *BigSequence) Next() *big.Int {
	// Terms are never negative, so the magnitude bytes are the whole value.
	term := new(big.Int).SetBytes(s.previous.Bytes())
	s.previous.Add(s.previous, s.current)
	s.previous, s.current = s.current, s.previous
	return term
}

// Backend names the integer implementation behind BigSequence.
func Backend() string {
	return "gmp"
}
