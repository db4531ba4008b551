package fibonacci

import (
	"math/big"
	"slices"
	"testing"
)

// TestSequence_FirstTerms verifies the leading terms of every numeric flavour.
func TestSequence_FirstTerms(t *testing.T) {
	t.Parallel()
	want := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}

	t.Run("int64", func(t *testing.T) {
		s := New[int64]()
		for i, w := range want {
			if got := s.Next(); got != w {
				t.Fatalf("term %d = %d, want %d", i+1, got, w)
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		s := New[float64]()
		for i, w := range want {
			if got := s.Next(); got != float64(w) {
				t.Fatalf("term %d = %v, want %d", i+1, got, w)
			}
		}
	})

	t.Run("uint32", func(t *testing.T) {
		s := New[uint32]()
		for i, w := range want {
			if got := s.Next(); int64(got) != w {
				t.Fatalf("term %d = %d, want %d", i+1, got, w)
			}
		}
	})

	t.Run("big", func(t *testing.T) {
		s := NewBig()
		for i, w := range want {
			if got := s.Next(); got.Cmp(big.NewInt(w)) != 0 {
				t.Fatalf("term %d = %s, want %d", i+1, got, w)
			}
		}
	})
}

// TestSequence_Independence verifies that advancing one instance never
// affects another one.
func TestSequence_Independence(t *testing.T) {
	t.Parallel()
	a := New[int64]()
	for range 20 {
		a.Next()
	}

	b := New[int64]()
	if got := b.Next(); got != 1 {
		t.Fatalf("fresh sequence first term = %d, want 1", got)
	}
	if got := a.Next(); got != 10946 {
		t.Errorf("advanced sequence term 21 = %d, want 10946", got)
	}
	if got := b.Next(); got != 1 {
		t.Errorf("fresh sequence second term = %d, want 1", got)
	}
}

// TestSequence_DriverScenario replays the two-lane demonstration directly on
// the sequence type.
func TestSequence_DriverScenario(t *testing.T) {
	t.Parallel()
	a := New[int64]()
	warmup := []int64{a.Next(), a.Next()}
	if !slices.Equal(warmup, []int64{1, 1}) {
		t.Fatalf("warmup = %v, want [1 1]", warmup)
	}

	b := New[int64]()
	var gotA, gotB []int64
	for range 10 {
		gotA = append(gotA, a.Next())
		gotB = append(gotB, b.Next())
	}

	wantA := []int64{2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	wantB := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	if !slices.Equal(gotA, wantA) {
		t.Errorf("lane A = %v, want %v", gotA, wantA)
	}
	if !slices.Equal(gotB, wantB) {
		t.Errorf("lane B = %v, want %v", gotB, wantB)
	}
}

// TestSequence_Int64Limit checks the last exact int64 term and the silent
// wrap right after it.
func TestSequence_Int64Limit(t *testing.T) {
	t.Parallel()
	s := New[int64]()
	var last int64
	for range MaxInt64Term {
		last = s.Next()
	}
	if last != 7540113804746346429 {
		t.Fatalf("F(%d) = %d, want 7540113804746346429", MaxInt64Term, last)
	}
	if next := s.Next(); next >= 0 {
		t.Errorf("F(%d) as int64 = %d, expected a wrapped negative value", MaxInt64Term+1, next)
	}
}

// TestSequence_All verifies that the iterator view shares state with Next.
func TestSequence_All(t *testing.T) {
	t.Parallel()
	s := New[int]()
	got := Take(s.All(), 5)
	if !slices.Equal(got, []int{1, 1, 2, 3, 5}) {
		t.Fatalf("Take(All, 5) = %v", got)
	}
	if next := s.Next(); next != 8 {
		t.Errorf("Next after iterator = %d, want 8", next)
	}
}

// TestProduce verifies that every range over a producer restarts from the
// seed terms.
func TestProduce(t *testing.T) {
	t.Parallel()
	seq := Produce[int64]()
	first := Take(seq, 6)
	second := Take(seq, 3)

	if !slices.Equal(first, []int64{1, 1, 2, 3, 5, 8}) {
		t.Errorf("first range = %v", first)
	}
	if !slices.Equal(second, []int64{1, 1, 2}) {
		t.Errorf("second range = %v", second)
	}
}

func TestProduceBig(t *testing.T) {
	t.Parallel()
	terms := Take(ProduceBig(), 100)
	if len(terms) != 100 {
		t.Fatalf("got %d terms, want 100", len(terms))
	}
	if got := terms[99].String(); got != "354224848179261915075" {
		t.Errorf("F(100) = %s, want 354224848179261915075", got)
	}
}

// TestBigSequence_ReturnedValuesAreCopies ensures the caller may keep the
// returned terms while the sequence keeps advancing.
func TestBigSequence_ReturnedValuesAreCopies(t *testing.T) {
	t.Parallel()
	s := NewBig()
	kept := make([]*big.Int, 0, 10)
	for range 10 {
		kept = append(kept, s.Next())
	}
	kept[0].SetInt64(999)
	for range 10 {
		s.Next()
	}

	want := []int64{999, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for i, w := range want {
		if kept[i].Int64() != w {
			t.Errorf("kept[%d] = %s, want %d", i, kept[i], w)
		}
	}
}

func TestTake(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"positive", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Take(Produce[int](), tt.n); len(got) != tt.want {
				t.Errorf("len(Take(%d)) = %d, want %d", tt.n, len(got), tt.want)
			}
		})
	}
}

func TestEstimateBitLen(t *testing.T) {
	t.Parallel()
	if got := EstimateBitLen(0); got != 0 {
		t.Errorf("EstimateBitLen(0) = %d, want 0", got)
	}
	// F(1000) has 694 bits.
	if got := EstimateBitLen(1000); got < 690 || got > 700 {
		t.Errorf("EstimateBitLen(1000) = %d, want about 694", got)
	}
}
