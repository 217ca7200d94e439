package prefilter_test

import (
	"fmt"

	"github.com/coregx/fuzzy/literal"
	"github.com/coregx/fuzzy/prefilter"
)

// ExampleBuilder shows the prefilter for a pattern that allows one edit.
func ExampleBuilder() {
	seq := literal.Partition([]rune("needle"), 1)
	seq.Minimize()

	pf := prefilter.NewBuilder(seq).Build()
	fmt.Println(pf)

	// "neadle" keeps the second piece intact.
	fmt.Println(pf.Find([]byte("haystack with a neadle"), 0))

	// Output:
	// aho-corasick
	// 19
}

// ExampleBuilder_MinLen shows a piece too short to be worth searching for.
func ExampleBuilder_MinLen() {
	seq := literal.Partition([]rune("needle"), 5)
	seq.Minimize()

	pf := prefilter.NewBuilder(seq).MinLen(2).Build()
	fmt.Println(pf == nil)

	// Output:
	// true
}
