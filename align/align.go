// Package align turns a finished fuzzy match into an edit script.
//
// The scanner only keeps the length-change trail of the traced path: one
// entry per edit, substitution 0, insertion +1, deletion -1. Replay walks the
// pattern and the matched window side by side and spends a trail entry at
// every divergence. Greedy matching can pair runes differently from the
// traced path; when the trail then fails to explain the window, Replay aligns
// it again with a banded dynamic program. Either way the work is done once
// per reported match, never while scanning.
package align

import (
	"fmt"

	"github.com/coregx/fuzzy/mask"
)

// Op is the kind of one edit.
type Op uint8

const (
	// Match keeps a pattern rune that equals the text rune.
	Match Op = iota

	// Substitute replaces a pattern rune by a different text rune.
	Substitute

	// Insert is a pattern rune missing from the text.
	Insert

	// Delete is a text rune missing from the pattern.
	Delete
)

// String returns a human-readable op name.
func (op Op) String() string {
	switch op {
	case Match:
		return "Match"
	case Substitute:
		return "Substitute"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Edit is one step of an alignment.
//
// PatternPos and TextPos are rune offsets into the pattern and the matched
// window. For Insert, TextPos is where the missing rune would go and TextRune
// is 0; for Delete, PatternPos is where the extra rune sits and PatternRune
// is 0.
type Edit struct {
	Op          Op
	PatternPos  int
	TextPos     int
	PatternRune rune
	TextRune    rune
}

// String formats the edit as op(pattern→text)@pos.
func (e Edit) String() string {
	switch e.Op {
	case Match:
		return fmt.Sprintf("=%q@%d", e.PatternRune, e.PatternPos)
	case Substitute:
		return fmt.Sprintf("~%q→%q@%d", e.PatternRune, e.TextRune, e.PatternPos)
	case Insert:
		return fmt.Sprintf("+%q@%d", e.PatternRune, e.PatternPos)
	default:
		return fmt.Sprintf("-%q@%d", e.TextRune, e.PatternPos)
	}
}

// Replay reconstructs the alignment of pattern against the matched window
// text, guided by the trail captured on acceptance.
//
// Runes are compared the way table compares them. Match entries are only
// included when includeMatches is set.
func Replay(table *mask.Table, pattern, text []rune, trail []int8, includeMatches bool) []Edit {
	eq := table.Equal

	edits, ok := replayTrail(pattern, text, trail, eq)
	if !ok {
		edits = banded(pattern, text, len(trail), eq)
	}

	if includeMatches {
		return edits
	}
	out := edits[:0]
	for _, e := range edits {
		if e.Op != Match {
			out = append(out, e)
		}
	}
	return out
}

// replayTrail walks both sequences greedily, matching equal runes and
// spending one trail entry per divergence. It fails when the trail runs out,
// is left over, or disagrees with the window length.
func replayTrail(pattern, text []rune, trail []int8, eq func(a, b rune) bool) ([]Edit, bool) {
	sum := 0
	for _, c := range trail {
		sum += int(c)
	}
	if len(pattern)-len(text) != sum {
		return nil, false
	}

	edits := make([]Edit, 0, max(len(pattern), len(text)))
	i, j, next := 0, 0, 0
	for i < len(pattern) || j < len(text) {
		if i < len(pattern) && j < len(text) && eq(pattern[i], text[j]) {
			edits = append(edits, Edit{Match, i, j, pattern[i], text[j]})
			i++
			j++
			continue
		}
		if next == len(trail) {
			return nil, false
		}

		switch trail[next] {
		case 0:
			if i == len(pattern) || j == len(text) {
				return nil, false
			}
			edits = append(edits, Edit{Substitute, i, j, pattern[i], text[j]})
			i++
			j++
		case 1:
			if i == len(pattern) {
				return nil, false
			}
			edits = append(edits, Edit{Insert, i, j, pattern[i], 0})
			i++
		default:
			if j == len(text) {
				return nil, false
			}
			edits = append(edits, Edit{Delete, i, j, 0, text[j]})
			j++
		}
		next++
	}

	return edits, next == len(trail)
}

// banded aligns the whole window with the classic edit-distance recurrence,
// restricted to cells within band of the diagonal. Any alignment of cost c
// stays within c of the diagonal, so a result above the band is retried with
// the full table.
func banded(pattern, text []rune, band int, eq func(a, b rune) bool) []Edit {
	m, n := len(pattern), len(text)
	band = max(band, abs(m-n))

	for {
		edits, cost := alignWithin(pattern, text, band, eq)
		if cost <= band || band >= max(m, n) {
			return edits
		}
		band = max(m, n)
	}
}

func alignWithin(pattern, text []rune, band int, eq func(a, b rune) bool) ([]Edit, int) {
	m, n := len(pattern), len(text)
	inf := m + n + 1

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		for j := range d[i] {
			d[i][j] = inf
		}
	}

	for i := 0; i <= m; i++ {
		for j := max(0, i-band); j <= min(n, i+band); j++ {
			switch {
			case i == 0:
				d[i][j] = j
			case j == 0:
				d[i][j] = i
			default:
				cost := 1
				if eq(pattern[i-1], text[j-1]) {
					cost = 0
				}
				d[i][j] = min(d[i-1][j-1]+cost, d[i-1][j]+1, d[i][j-1]+1)
			}
		}
	}

	// Trace back from the corner, preferring diagonal moves.
	edits := make([]Edit, 0, max(m, n))
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && eq(pattern[i-1], text[j-1]) && d[i][j] == d[i-1][j-1]:
			edits = append(edits, Edit{Match, i - 1, j - 1, pattern[i-1], text[j-1]})
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			edits = append(edits, Edit{Substitute, i - 1, j - 1, pattern[i-1], text[j-1]})
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			edits = append(edits, Edit{Insert, i - 1, j, pattern[i-1], 0})
			i--
		default:
			edits = append(edits, Edit{Delete, i, j - 1, 0, text[j-1]})
			j--
		}
	}

	for l, r := 0, len(edits)-1; l < r; l, r = l+1, r-1 {
		edits[l], edits[r] = edits[r], edits[l]
	}
	return edits, d[m][n]
}

// Distance returns the Levenshtein distance between a and b.
func Distance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j-1]+cost, prev[j]+1, cur[j-1]+1)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
