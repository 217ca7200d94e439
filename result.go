package fuzzy

import (
	"fmt"

	"github.com/coregx/fuzzy/align"
)

// Result is an immutable snapshot of one match.
//
// A Result contains:
//   - the pattern that matched
//   - start (inclusive) and end (exclusive) byte offsets into the text
//   - the edit distance of the match
//   - the matched text and the length-change trail of the traced window
//
// Results stay valid after the matcher that produced them moves on.
//
// Example:
//
//	p := fuzzy.MustCompile("test", 1)
//	r, _ := p.FindString("a tost b")
//	fmt.Println(r.Start(), r.End(), r.Distance(), r.Text()) // 2 6 1 tost
type Result struct {
	pattern  *Pattern
	start    int
	end      int
	distance int
	text     string
	trail    []int8
}

// newResult snapshots a hit over text. The trail is copied.
func newResult(p *Pattern, text string, h *hit) Result {
	trail := make([]int8, len(h.trail))
	copy(trail, h.trail)
	return Result{
		pattern:  p,
		start:    h.start,
		end:      h.end,
		distance: h.distance,
		text:     text[h.start:h.end],
		trail:    trail,
	}
}

// Pattern returns the pattern that matched.
func (r Result) Pattern() *Pattern {
	return r.pattern
}

// Start returns the inclusive start byte offset of the match.
func (r Result) Start() int {
	return r.start
}

// End returns the exclusive end byte offset of the match.
func (r Result) End() int {
	return r.end
}

// Distance returns the edit distance between the pattern and the match.
func (r Result) Distance() int {
	return r.distance
}

// Text returns the matched text.
func (r Result) Text() string {
	return r.text
}

// Len returns the length of the match in bytes.
func (r Result) Len() int {
	return r.end - r.start
}

// Trail returns a copy of the length-change trail: one entry per edit,
// 0 for a substitution, +1 for a pattern character missing from the text and
// -1 for an extra text character.
func (r Result) Trail() []int8 {
	trail := make([]int8, len(r.trail))
	copy(trail, r.trail)
	return trail
}

// Edits reconstructs the alignment of the pattern against the matched text.
//
// With includeMatches, unchanged characters are reported as align.Match
// entries; otherwise only the edits are returned.
//
// Example:
//
//	r, _ := fuzzy.MustCompile("test", 1).FindString("tost")
//	fmt.Println(r.Edits(false)) // [~'e'→'o'@1]
func (r Result) Edits(includeMatches bool) []align.Edit {
	if r.pattern == nil {
		return nil
	}
	return align.Replay(r.pattern.prog.Table(), r.pattern.runes, []rune(r.text), r.trail, includeMatches)
}

// String returns a debugging representation.
// Format: "[start,end)~distance "text""
func (r Result) String() string {
	return fmt.Sprintf("[%d,%d)~%d %q", r.start, r.end, r.distance, r.text)
}
