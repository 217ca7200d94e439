package literal

// Partition splits a pattern into k+1 contiguous pieces of near-equal rune
// length.
//
// Any alignment of the pattern against a text window with at most k edits
// leaves at least one piece untouched, so at least one piece occurs verbatim
// inside every match. Piece i covers runes [i*m/(k+1), (i+1)*m/(k+1)).
//
// Returns nil when the pattern is shorter than k+1 runes: some piece would be
// empty and every position would be a candidate.
//
// Example:
//
//	seq := literal.Partition([]rune("abcdef"), 2)
//	// seq holds "ab", "cd" and "ef"
func Partition(pattern []rune, k int) *Seq {
	m := len(pattern)
	if k < 0 || m < k+1 {
		return nil
	}

	parts := k + 1
	lits := make([]Literal, 0, parts)
	for i := 0; i < parts; i++ {
		lo, hi := i*m/parts, (i+1)*m/parts
		lits = append(lits, NewLiteral([]byte(string(pattern[lo:hi])), lo))
	}
	return NewSeq(lits...)
}
