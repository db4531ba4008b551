package fibonacci

import "testing"

// TestFastDoubling tests the oracle with known values.
func TestFastDoubling(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		n        uint64
		expected string
	}{
		{"F(0) base case", 0, "0"},
		{"F(1) base case", 1, "1"},
		{"F(2) first non-trivial", 2, "1"},
		{"F(3)", 3, "2"},
		{"F(10)", 10, "55"},
		{"F(50)", 50, "12586269025"},
		{"F(92) max int64", 92, "7540113804746346429"},
		{"F(93) overflows int64", 93, "12200160415121876738"},
		{"F(100)", 100, "354224848179261915075"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FastDoubling(tt.n).String(); got != tt.expected {
				t.Errorf("FastDoubling(%d) = %s, want %s", tt.n, got, tt.expected)
			}
		})
	}
}

// TestFastDoubling_MatchesBigSequence cross-checks the oracle against the
// iterative sequence for the first few hundred terms.
func TestFastDoubling_MatchesBigSequence(t *testing.T) {
	t.Parallel()
	s := NewBig()
	for n := uint64(1); n <= 500; n++ {
		term := s.Next()
		if want := FastDoubling(n); term.Cmp(want) != 0 {
			t.Fatalf("term %d = %s, oracle says %s", n, term, want)
		}
	}
}
