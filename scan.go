package fuzzy

import (
	"unicode/utf8"

	"github.com/coregx/fuzzy/bitap"
)

// cursor walks a byte range of the text one rune at a time.
//
// The ring keeps the byte offsets of the most recent rune boundaries, indexed
// by rune count, so that a match start computed in runes maps back to a byte
// offset without rescanning. It must span at least m+k+1 boundaries: no match
// window is longer than m+k runes.
type cursor struct {
	text string
	pos  int
	from int
	to   int

	runes int // runes consumed since from
	base  int // rune count at the last automaton reset
	ring  []int
	rev   []rune
}

// reset positions the cursor at from. span is the longest possible match
// window in runes.
func (c *cursor) reset(text string, from, to, span int) {
	from, to = clampRange(len(text), from, to)
	c.text = text
	c.from = from
	c.to = to
	if need := span + 2; len(c.ring) < need {
		c.ring = make([]int, need)
	}
	c.restart(from, 0)
}

// restart moves the cursor to byte offset pos, known to be at rune count runes.
func (c *cursor) restart(pos, runes int) {
	c.pos = pos
	c.runes = runes
	c.base = runes
	c.ring[runes%len(c.ring)] = pos
}

// next decodes the rune at the cursor and advances past it.
func (c *cursor) next() (rune, bool) {
	if c.pos >= c.to {
		return 0, false
	}

	r, size := rune(c.text[c.pos]), 1
	if r >= utf8.RuneSelf {
		r, size = utf8.DecodeRuneInString(c.text[c.pos:c.to])
	}
	c.pos += size
	c.runes++
	c.ring[c.runes%len(c.ring)] = c.pos
	return r, true
}

// offset returns the byte offset of rune boundary n. n must lie within the
// ring span behind the cursor.
func (c *cursor) offset(n int) int {
	return c.ring[n%len(c.ring)]
}

// tail returns up to n runes read since the last reset, nearest first. The
// slice is overwritten by the next call.
func (c *cursor) tail(n int) []rune {
	n = min(n, c.runes-c.base)
	c.rev = c.rev[:0]
	for j := range n {
		i := c.runes - 1 - j
		r, _ := utf8.DecodeRuneInString(c.text[c.offset(i):c.offset(i+1)])
		c.rev = append(c.rev, r)
	}
	return c.rev
}

// done reports whether the cursor reached the end of its range.
func (c *cursor) done() bool {
	return c.pos >= c.to
}

func clampRange(n, from, to int) (int, int) {
	if to < 0 || to > n {
		to = n
	}
	if from < 0 {
		from = 0
	}
	if from > to {
		from = to
	}
	return from, to
}

// hit is a mutable match record reused across finds.
type hit struct {
	start     int
	end       int
	startRune int
	endRune   int
	distance  int
	trail     []int8
}

// set copies other into h, reusing h's trail buffer.
func (h *hit) set(other *hit) {
	trail := append(h.trail[:0], other.trail...)
	*h = *other
	h.trail = trail
}

// capture records the match ending at the cursor, found by a at level.
//
// The window is traced back from the cursor over the runes read since the
// last reset; its distance may come out below level.
func capture(a bitap.Automaton, level int, c *cursor, h *hit) {
	m := a.Program().Len()
	distance, trail := a.Trace(c.tail(m+level), level)
	start := c.runes - m + bitap.Delta(trail)

	h.start = c.offset(start)
	h.end = c.pos
	h.startRune = start
	h.endRune = c.runes
	h.distance = distance
	h.trail = append(h.trail[:0], trail...)
}

// flush runs the trailing steps at the end of the text. It returns the
// lowest level <= limit that aligns with the runes read since the last reset,
// or -1.
func flush(a bitap.Automaton, c *cursor, limit int) int {
	if c.runes == c.base {
		return -1
	}
	return a.Flush(limit)
}

// refine looks for a cheaper match within one pattern length past h.
//
// Each cheaper acceptance replaces h and restarts the window from its end.
// The automaton must not have been stepped since h was captured; afterwards
// its upper levels are stale and the caller must reset it.
func refine(a bitap.Automaton, c *cursor, h *hit) {
	m := a.Program().Len()
	for h.distance > 0 {
		limit := h.distance - 1
		window := h.endRune + m
		level := -1
		for level < 0 && c.runes < window {
			r, ok := c.next()
			if !ok {
				break
			}
			level = a.Step(r, limit)
		}
		if level < 0 && c.done() {
			level = flush(a, c, limit)
		}
		if level < 0 {
			return
		}
		capture(a, level, c, h)
	}
}
