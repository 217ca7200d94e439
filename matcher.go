package fuzzy

import (
	"iter"
	"log/slog"
	"unicode/utf8"

	"github.com/coregx/fuzzy/bitap"
	"github.com/coregx/fuzzy/internal/conv"
	"github.com/coregx/fuzzy/prefilter"
)

// Matcher scans one text for successive matches of a Pattern.
//
// Matches are reported left to right; each one starts at or after the end of
// the previous one. The match accessors (Start, End, Distance, FoundText,
// Pattern) are valid only after Find or FindBest returned true and panic with
// a *StateError otherwise.
//
// A Matcher is not safe for concurrent use. Several matchers over the same
// Pattern may run concurrently.
//
// Example:
//
//	m := fuzzy.MustCompile("aa", 1).Matcher("aaaaa")
//	for m.Find() {
//	    fmt.Println(m.Start(), m.End(), m.Distance())
//	}
//	// 0 2 0
//	// 2 4 0
//	// 4 5 1
type Matcher struct {
	pattern *Pattern
	auto    bitap.Automaton
	cur     cursor
	span    int

	hit     hit
	matched bool

	// scratch records for FindBest
	best, trial hit

	tracker *prefilter.Tracker
	pf      *prefilter.Tracker // nil once retired
	horizon int                // start of the last piece found, -1 if none
}

func newMatcher(p *Pattern) *Matcher {
	m := &Matcher{
		pattern: p,
		auto:    p.prog.New(),
		span:    p.Len() + p.MaxDistance(),
		horizon: -1,
	}
	if p.pf != nil {
		m.tracker = prefilter.NewTracker(p.pf)
		m.pf = m.tracker
	}
	return m
}

// Reset restarts the matcher over text[from:to]. Out-of-range bounds are
// clamped. A prefilter retired earlier stays retired.
func (m *Matcher) Reset(text string, from, to int) {
	m.cur.reset(text, from, to, m.span)
	m.auto.Reset()
	m.matched = false
	m.horizon = -1
	if m.tracker != nil && m.tracker.IsActive() {
		m.pf = m.tracker
	}
}

// Find advances to the next match with at most the pattern's maximum
// distance. It returns false when the text is exhausted.
func (m *Matcher) Find() bool {
	m.matched = m.scan(m.pattern.MaxDistance(), &m.hit)
	return m.matched
}

// FindBest advances to the leftmost match with the lowest distance found in
// the rest of the text.
//
// The allowed distance shrinks until no match remains. With preferExact, a
// distance-0 match whose text is byte-for-byte the pattern text wins over an
// earlier distance-0 match that only equals it under case folding. The next
// Find continues after the returned match.
func (m *Matcher) FindBest(preferExact bool) bool {
	pos, runes := m.cur.pos, m.cur.runes

	found := false
	bestLimit := -1
	for limit := m.pattern.MaxDistance(); limit >= 0; limit = m.best.distance - 1 {
		m.restart(pos, runes)
		if !m.scan(limit, &m.trial) {
			break
		}
		m.best.set(&m.trial)
		found = true
		bestLimit = limit
	}
	if !found {
		m.matched = false
		return false
	}

	if bestLimit != m.best.distance {
		m.restart(pos, runes)
		m.scan(m.best.distance, &m.best)
	}

	if preferExact && m.best.distance == 0 && m.text(&m.best) != m.pattern.text {
		m.restart(m.best.end, m.best.endRune)
		for m.scan(0, &m.trial) {
			if m.text(&m.trial) == m.pattern.text {
				m.best.set(&m.trial)
				break
			}
		}
	}

	m.hit.set(&m.best)
	m.restart(m.hit.end, m.hit.endRune)
	m.matched = true
	return true
}

// scan steps the automaton with the given limit until it accepts, then
// refines the hit into h and resumes at its end.
func (m *Matcher) scan(limit int, h *hit) bool {
	for {
		if !m.admit() {
			return false
		}
		r, ok := m.cur.next()
		if !ok {
			break
		}
		if level := m.auto.Step(r, limit); level >= 0 {
			return m.report(level, h)
		}
	}

	if level := flush(m.auto, &m.cur, limit); level >= 0 {
		return m.report(level, h)
	}
	return false
}

func (m *Matcher) report(level int, h *hit) bool {
	capture(m.auto, level, &m.cur, h)
	refine(m.auto, &m.cur, h)
	m.restart(h.end, h.endRune)
	return true
}

// admit reports whether a match can still end at or after the next rune: some
// piece of the pattern must occur no earlier than the longest possible window
// reaches back.
func (m *Matcher) admit() bool {
	if m.pf == nil {
		return true
	}

	lo := m.cur.offset(max(m.cur.base, m.cur.runes-m.span))
	if lo <= m.horizon {
		return true
	}

	m.horizon = m.pf.Find(conv.Bytes(m.cur.text)[:m.cur.to], lo)
	if m.horizon >= 0 {
		m.skip()
		return true
	}
	if m.pf.IsActive() {
		return false
	}

	searched, skipped, ratio, _ := m.pf.Stats()
	m.pattern.logger.Debug("fuzzy: prefilter retired",
		slog.String("pattern", m.pattern.text),
		slog.String("prefilter", m.pf.Inner().String()),
		slog.Uint64("searched", searched),
		slog.Uint64("skipped", skipped),
		slog.Float64("ratio", ratio),
	)
	m.pf = nil
	return true
}

// skip jumps the scan forward to the earliest byte at which a window holding
// the piece at the horizon can start. Every match holds some piece, so none
// starts in the bytes skipped.
func (m *Matcher) skip() {
	c := &m.cur
	target := m.horizon - m.span*utf8.UTFMax
	for target > c.pos && !utf8.RuneStart(c.text[target]) {
		target--
	}
	if target <= c.pos {
		return
	}
	m.pf.Skipped(target - c.pos)
	m.restart(target, c.runes)
}

// restart moves the cursor and returns the automaton to its initial state.
func (m *Matcher) restart(pos, runes int) {
	m.cur.restart(pos, runes)
	m.auto.Reset()
}

func (m *Matcher) text(h *hit) string {
	return m.cur.text[h.start:h.end]
}

func (m *Matcher) mustMatch(op string) {
	if !m.matched {
		panic(&StateError{Op: op})
	}
}

// Start returns the byte offset where the current match starts.
func (m *Matcher) Start() int {
	m.mustMatch("Start")
	return m.hit.start
}

// End returns the byte offset just past the current match.
func (m *Matcher) End() int {
	m.mustMatch("End")
	return m.hit.end
}

// Distance returns the edit distance of the current match.
func (m *Matcher) Distance() int {
	m.mustMatch("Distance")
	return m.hit.distance
}

// FoundText returns the text of the current match.
func (m *Matcher) FoundText() string {
	m.mustMatch("FoundText")
	return m.text(&m.hit)
}

// Pattern returns the pattern of the current match.
func (m *Matcher) Pattern() *Pattern {
	m.mustMatch("Pattern")
	return m.pattern
}

// Match returns a snapshot of the current match, or false if there is none.
func (m *Matcher) Match() (Result, bool) {
	if !m.matched {
		return Result{}, false
	}
	return newResult(m.pattern, m.cur.text, &m.hit), true
}

// All returns an iterator over the remaining matches.
func (m *Matcher) All() iter.Seq[Result] {
	return findAll(m)
}
