// Package literal provides types and operations for the exact pieces of a
// fuzzy pattern.
//
// The primary use case is prefilter optimization: a pattern with at most k
// edits split into k+1 contiguous pieces keeps at least one piece verbatim in
// every match (pigeonhole principle), so a scan can skip text where no piece
// occurs at all before running the bit-parallel automaton.
//
// Key concepts:
//   - A Literal is a concrete byte sequence plus the rune offset it was cut at
//   - A Seq is a set of alternative literals, at least one of which must occur
//   - Minimize drops literals that can never be the only one to occur
package literal

import (
	"bytes"
	"sort"
	"strconv"
)

// Literal represents one exact piece of a pattern.
//
// Example:
//   - Pattern "hello world", k=1 → Literal{"hello ", 0} and Literal{"world", 6}
type Literal struct {
	// Bytes contains the UTF-8 encoded piece.
	Bytes []byte

	// Pos is the rune offset of the piece within the pattern.
	Pos int
}

// NewLiteral creates a new Literal from the given byte sequence and offset.
//
// Example:
//
//	lit := literal.NewLiteral([]byte("hello"), 0)
//	fmt.Println(lit) // Output: literal{hello, pos=0}
func NewLiteral(b []byte, pos int) Literal {
	return Literal{
		Bytes: b,
		Pos:   pos,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, pos=N}"
func (l Literal) String() string {
	return "literal{" + string(l.Bytes) + ", pos=" + strconv.Itoa(l.Pos) + "}"
}

// Seq represents a set of alternative literals of which at least one occurs
// verbatim in every match.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), 0),
//	    literal.NewLiteral([]byte("bar"), 3),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// MinLen returns the length in bytes of the shortest literal, or 0 for an
// empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	shortest := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		shortest = min(shortest, lit.Len())
	}
	return shortest
}

// Minimize removes redundant literals from the sequence.
//
// A literal L is redundant if a shorter or equal kept literal S occurs inside
// L: any text containing L also contains S, so searching for S alone finds
// every candidate L would. For example, in ["ab", "cabd"], "ab" makes "cabd"
// redundant.
//
// Algorithm:
//  1. Sort literals by length (shortest first, stable on Pos)
//  2. Keep each literal that contains none of the literals kept so far
//
// Time complexity: O(n² * m) where n = number of literals, m = average literal length
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("ab"), 0),
//	    literal.NewLiteral([]byte("ab"), 2),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 1
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		isRedundant := false
		for _, k := range kept {
			if bytes.Contains(current.Bytes, k.Bytes) {
				isRedundant = true
				break
			}
		}

		if !isRedundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}
