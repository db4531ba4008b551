package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Sequence Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// SeedPrevious and SeedCurrent are the two leading terms every fresh
	// sequence starts from. With both set to 1 the produced terms are
	// F(1), F(2), F(3), ... = 1, 1, 2, 3, 5, ...
	SeedPrevious = 1
	SeedCurrent  = 1

	// MaxInt64Term is the largest 1-based term index whose value fits in an
	// int64. F(92) = 7540113804746346429; F(93) overflows and a Sequence[int64]
	// silently wraps from there on.
	MaxInt64Term = 92

	// MaxFloat64Term is the largest 1-based term index whose value is finite
	// as a float64. F(1477) exceeds math.MaxFloat64 and becomes +Inf.
	//
	// Exactness is lost much earlier, from F(79) on, since float64 only
	// carries a 53-bit mantissa.
	MaxFloat64Term = 1476

	// MaxExactFloat64Term is the largest 1-based term index a float64
	// sequence still reproduces exactly.
	MaxExactFloat64Term = 78
)

const (
	// FibonacciGrowthFactor is log2(phi), where phi ≈ 1.618 (golden ratio).
	// Used to estimate bit length of F(n).
	FibonacciGrowthFactor = 0.69424
)

// EstimateBitLen returns an estimate of the bit length of F(n).
func EstimateBitLen(n uint64) int {
	if n == 0 {
		return 0
	}
	return int(float64(n)*FibonacciGrowthFactor) + 1
}
