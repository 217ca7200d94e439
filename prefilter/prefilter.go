// Package prefilter provides fast candidate filtering for fuzzy search using
// the exact pieces of a pattern.
//
// A pattern of m runes with at most k edits is split into k+1 pieces
// (literal.Partition). Every match contains at least one piece verbatim, so
// text that holds no piece at all cannot contain a match and the bit-parallel
// automaton never has to look at it.
//
// The package selects the search strategy from the pieces:
//   - Single byte → memchr (SWAR byte search)
//   - Single substring → memmem (rare byte search)
//   - Several pieces → Aho-Corasick automaton
//
// Example usage:
//
//	seq := literal.Partition([]rune("needle"), 1)
//	seq.Minimize()
//	pf := prefilter.NewBuilder(seq).Build()
//
//	haystack := []byte("haystack with a neadle")
//	pos := pf.Find(haystack, 0)
//	// pos == 19 (position of "dle")
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/fuzzy/literal"
	"github.com/coregx/fuzzy/simd"
)

// Prefilter finds positions where a piece of the pattern occurs.
type Prefilter interface {
	// Find returns the start of the first piece occurrence that begins at or
	// after start and ends within haystack, or -1 if there is none.
	//
	// Parameters:
	//   haystack - the byte buffer to search
	//   start - the starting position (must be >= 0)
	Find(haystack []byte, start int) int

	// HeapBytes returns the number of bytes of heap memory used by this
	// prefilter.
	HeapBytes() int

	// String names the search strategy.
	String() string
}

// Builder constructs the best prefilter for a set of pieces.
//
// Example:
//
//	pf := prefilter.NewBuilder(pieces).MinLen(2).Build()
//	if pf != nil {
//	    pos := pf.Find(haystack, 0)
//	}
type Builder struct {
	pieces *literal.Seq
	minLen int
}

// NewBuilder creates a new prefilter builder from the pattern pieces.
// pieces may be nil, indicating no prefilter is possible.
func NewBuilder(pieces *literal.Seq) *Builder {
	return &Builder{
		pieces: pieces,
		minLen: 1,
	}
}

// MinLen sets the shortest piece, in bytes, worth searching for. Pieces
// shorter than that match too often to skip anything.
func (b *Builder) MinLen(n int) *Builder {
	b.minLen = n
	return b
}

// Build constructs the best prefilter for the given pieces.
//
// Returns nil if no effective prefilter can be built: no pieces, a piece
// shorter than the minimum length, or an automaton that fails to build.
//
// The selection logic:
//  1. Single one-byte piece → memchr
//  2. Single piece → memmem
//  3. Several pieces → Aho-Corasick
func (b *Builder) Build() Prefilter {
	seq := b.pieces
	if seq.IsEmpty() || seq.MinLen() < max(b.minLen, 1) {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if lit.Len() == 1 {
			return newMemchrPrefilter(lit.Bytes[0])
		}
		return newMemmemPrefilter(lit.Bytes)
	}

	return newAhoCorasickPrefilter(seq)
}

// memchrPrefilter wraps simd.Memchr as a Prefilter.
//
// Example pattern: "ab" with k=1 → search for 'a' or 'b' (one of them after
// minimization when both are equal, e.g. "aa").
type memchrPrefilter struct {
	needle byte
}

func newMemchrPrefilter(needle byte) Prefilter {
	return &memchrPrefilter{needle: needle}
}

// Find implements Prefilter.Find using simd.Memchr.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memchr(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// HeapBytes implements Prefilter.HeapBytes.
// Returns 0 as no heap allocation is needed.
func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

func (p *memchrPrefilter) String() string {
	return "memchr"
}

// memmemPrefilter wraps simd.Memmem as a Prefilter.
//
// Example pattern: "needle" with k=0 → search for "needle".
type memmemPrefilter struct {
	needle []byte
}

// newMemmemPrefilter copies the needle to prevent aliasing.
func newMemmemPrefilter(needle []byte) Prefilter {
	needleCopy := make([]byte, len(needle))
	copy(needleCopy, needle)

	return &memmemPrefilter{needle: needleCopy}
}

// Find implements Prefilter.Find using simd.Memmem.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memmem(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// HeapBytes implements Prefilter.HeapBytes.
// Returns the size of the needle buffer (stored on heap).
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}

func (p *memmemPrefilter) String() string {
	return "memmem"
}

// ahoCorasickPrefilter searches for all pieces at once.
//
// Example pattern: "hello world" with k=2 → search for "hel", "lo " and
// "world" in a single pass.
type ahoCorasickPrefilter struct {
	auto  *ahocorasick.Automaton
	bytes int
}

// newAhoCorasickPrefilter returns nil when the automaton cannot be built.
func newAhoCorasickPrefilter(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	total := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		total += len(lit.Bytes)
	}

	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, bytes: total}
}

// Find implements Prefilter.Find using the Aho-Corasick automaton.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// HeapBytes implements Prefilter.HeapBytes.
// Reports the piece bytes the automaton was built from; the automaton's own
// tables are not visible from here.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.bytes
}

func (p *ahoCorasickPrefilter) String() string {
	return "aho-corasick"
}
