// Package fuzzy provides approximate substring search for Go.
//
// A pattern is compiled together with a maximum edit distance k. Scanning a
// text reports the non-overlapping windows whose Levenshtein distance to the
// pattern is at most k, together with the exact distance and, on demand, the
// edit script that turns the pattern into the window.
//
// fuzzy is built on:
//   - A bit-parallel k-difference automaton (one machine word per edit level
//     for patterns up to 64 characters, a multi-word vector beyond)
//   - A reverse run anchored at each match end that recovers the start and
//     the length-change trail of the cheapest window
//   - Bounded refinement that trades an early hit for a cheaper one nearby
//   - Exact-piece prefilters (memchr, memmem, Aho-Corasick) that skip text
//     without pieces and end the scan once no match can remain
//
// Text is processed as UTF-8, one character (rune) at a time. Offsets in
// results are byte offsets into the text.
//
// Basic usage:
//
//	// Compile a pattern that tolerates one edit
//	p, err := fuzzy.Compile("needle", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Iterate over all matches
//	m := p.Matcher("a haystack with a neeedle and a nedle")
//	for m.Find() {
//	    fmt.Println(m.Start(), m.End(), m.Distance(), m.FoundText())
//	}
//
// Advanced usage:
//
//	// Case-insensitive matching
//	config := fuzzy.DefaultConfig()
//	config.CaseInsensitive = true
//	p, err := fuzzy.CompileWithConfig("Duis", 1, config)
//
//	// Several patterns in one pass, reported in document order
//	g, err := fuzzy.Combine(p1, p2, p3)
//	for r := range g.All(text) {
//	    fmt.Println(r.Pattern(), r.Text())
//	}
//
// Performance characteristics:
//   - O(n * k * ceil(m/64)) time for a text of n characters
//   - No allocation per character; a matcher allocates once
//   - Case-sensitive patterns stop scanning at the last possible match
package fuzzy

import (
	"iter"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/coregx/fuzzy/bitap"
	"github.com/coregx/fuzzy/literal"
	"github.com/coregx/fuzzy/prefilter"
)

// Pattern is a compiled fuzzy pattern.
//
// A Pattern is immutable and safe to use concurrently from multiple
// goroutines. Each scan runs on its own Matcher.
//
// Example:
//
//	p := fuzzy.MustCompile("hello", 1)
//	if p.Contains("well, helo there") {
//	    println("matched!")
//	}
type Pattern struct {
	text   string
	runes  []rune
	prog   *bitap.Program
	fold   bool
	pf     prefilter.Prefilter
	logger *slog.Logger
}

// Compile compiles pattern with maximum edit distance k using the default
// configuration.
//
// Returns an error if the pattern is empty or k is negative.
//
// Example:
//
//	p, err := fuzzy.Compile("test", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string, k int) (*Pattern, error) {
	return CompileWithConfig(pattern, k, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var typo = fuzzy.MustCompile("receive", 2)
func MustCompile(pattern string, k int) *Pattern {
	p, err := Compile(pattern, k)
	if err != nil {
		panic("fuzzy: Compile(" + quote(pattern) + "): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := fuzzy.DefaultConfig()
//	config.Tier = fuzzy.TierUnbounded // Exercise the multi-word automaton
//	p, err := fuzzy.CompileWithConfig("fuzzy", 2, config)
func CompileWithConfig(pattern string, k int, config Config) (*Pattern, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	runes := []rune(pattern)
	prog, err := bitap.Compile(runes, k, config.CaseInsensitive, config.Tier)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	p := &Pattern{
		text:   pattern,
		runes:  prog.Runes(),
		prog:   prog,
		fold:   config.CaseInsensitive,
		logger: config.logger(),
	}

	pieces := 0
	// Invalid UTF-8 in the text decodes to RuneError, which a piece's
	// encoding cannot find.
	if config.EnablePrefilter && !config.CaseInsensitive && !slices.Contains(runes, utf8.RuneError) {
		if seq := literal.Partition(runes, k); seq != nil {
			seq.Minimize()
			pieces = seq.Len()
			p.pf = prefilter.NewBuilder(seq).MinLen(config.MinPieceLen).Build()
		}
	}

	strategy := "none"
	if p.pf != nil {
		strategy = p.pf.String()
	}
	p.logger.Debug("fuzzy: pattern compiled",
		slog.String("pattern", pattern),
		slog.Int("k", k),
		slog.String("tier", prog.Tier().String()),
		slog.String("prefilter", strategy),
		slog.Int("pieces", pieces),
	)

	return p, nil
}

// quote wraps s in backquotes, like the regexp package does in its panics.
func quote(s string) string {
	return "`" + s + "`"
}

// Text returns the source text of the pattern.
func (p *Pattern) Text() string {
	return p.text
}

// MaxDistance returns the maximum edit distance k.
func (p *Pattern) MaxDistance() int {
	return p.prog.MaxDistance()
}

// CaseInsensitive reports whether the pattern folds case.
func (p *Pattern) CaseInsensitive() bool {
	return p.fold
}

// Len returns the pattern length in characters (runes).
func (p *Pattern) Len() int {
	return len(p.runes)
}

// Tier returns the bit-vector tier backing the pattern.
func (p *Pattern) Tier() Tier {
	return p.prog.Tier()
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.text
}

// Matcher returns a matcher over the whole text.
//
// Example:
//
//	m := fuzzy.MustCompile("test", 1).Matcher("a tost and a test")
//	for m.Find() {
//	    fmt.Println(m.FoundText(), m.Distance())
//	}
func (p *Pattern) Matcher(text string) *Matcher {
	return p.MatcherRange(text, 0, len(text))
}

// MatcherRange returns a matcher over text[from:to]. Offsets reported by the
// matcher are relative to text, not to from. Out-of-range bounds are
// clamped.
func (p *Pattern) MatcherRange(text string, from, to int) *Matcher {
	m := newMatcher(p)
	m.Reset(text, from, to)
	return m
}

// NewFinder implements Searcher.
func (p *Pattern) NewFinder(text string, from, to int) Finder {
	return p.MatcherRange(text, from, to)
}

// All returns an iterator over all successive matches in text.
//
// Example:
//
//	for r := range fuzzy.MustCompile("aa", 1).All("aaaaa") {
//	    fmt.Println(r) // [0,2)~0 "aa", [2,4)~0 "aa", [4,5)~1 "a"
//	}
func (p *Pattern) All(text string) iter.Seq[Result] {
	return p.Matcher(text).All()
}

// FindAll returns successive matches in text.
//
// If n >= 0, returns at most n matches. If n < 0, returns all matches.
// Returns nil if there is no match.
func (p *Pattern) FindAll(text string, n int) []Result {
	if n == 0 {
		return nil
	}

	var results []Result
	m := p.Matcher(text)
	for m.Find() {
		r, _ := m.Match()
		results = append(results, r)
		if n > 0 && len(results) == n {
			break
		}
	}
	return results
}

// FindString returns the first match in text.
func (p *Pattern) FindString(text string) (Result, bool) {
	m := p.Matcher(text)
	if !m.Find() {
		return Result{}, false
	}
	return m.Match()
}

// Count returns the number of successive matches in text.
//
// If n >= 0, counts at most n matches. If n < 0, counts all matches.
func (p *Pattern) Count(text string, n int) int {
	if n == 0 {
		return 0
	}

	count := 0
	m := p.Matcher(text)
	for m.Find() {
		count++
		if n > 0 && count == n {
			break
		}
	}
	return count
}

// Contains reports whether text contains a window within the pattern's
// maximum distance.
func (p *Pattern) Contains(text string) bool {
	return p.Matcher(text).Find()
}
