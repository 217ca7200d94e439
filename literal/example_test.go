package literal_test

import (
	"fmt"

	"github.com/coregx/fuzzy/literal"
)

// Example demonstrates splitting a pattern into exact pieces
func Example() {
	// With at most one edit, "fuzzy" or "search" survives intact in any match.
	seq := literal.Partition([]rune("fuzzysearch"), 1)

	fmt.Printf("Sequence has %d literals\n", seq.Len())
	for i := 0; i < seq.Len(); i++ {
		fmt.Println(seq.Get(i))
	}

	// Output:
	// Sequence has 2 literals
	// literal{fuzzy, pos=0}
	// literal{search, pos=5}
}

// ExampleSeq_Minimize demonstrates removing redundant pieces
func ExampleSeq_Minimize() {
	// "aaaa" with k=1 splits into "aa" and "aa": one search is enough.
	seq := literal.Partition([]rune("aaaa"), 1)

	fmt.Printf("Before minimize: %d literals\n", seq.Len())
	seq.Minimize()
	fmt.Printf("After minimize: %d literals\n", seq.Len())
	fmt.Printf("Remaining: %s\n", seq.Get(0).Bytes)

	// Output:
	// Before minimize: 2 literals
	// After minimize: 1 literals
	// Remaining: aa
}
