package fibonacci

import "fmt"

// ExampleNew demonstrates pulling terms one at a time.
func ExampleNew() {
	s := New[int64]()
	for range 8 {
		fmt.Print(s.Next(), " ")
	}
	fmt.Println()
	// Output:
	// 1 1 2 3 5 8 13 21
}

// ExampleSequence_All shows the range-over-func view.
func ExampleSequence_All() {
	for term := range New[int]().All() {
		if term > 50 {
			break
		}
		fmt.Print(term, " ")
	}
	fmt.Println()
	// Output:
	// 1 1 2 3 5 8 13 21 34
}

// ExampleNewBig shows that the arbitrary-precision flavour goes past int64.
func ExampleNewBig() {
	s := NewBig()
	for range 99 {
		s.Next()
	}
	fmt.Println(s.Next())
	// Output:
	// 354224848179261915075
}
