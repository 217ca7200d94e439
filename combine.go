package fuzzy

import (
	"iter"
	"log/slog"
	"strings"
)

// Finder is the scanning surface shared by Matcher and the finders of a
// Group.
type Finder interface {
	// Find advances to the next match and reports whether there is one.
	Find() bool

	// Reset restarts the finder over text[from:to].
	Reset(text string, from, to int)

	// Start, End, Distance, FoundText and Pattern describe the current
	// match. They panic with a *StateError when there is none.
	Start() int
	End() int
	Distance() int
	FoundText() string
	Pattern() *Pattern

	// Match returns a snapshot of the current match.
	Match() (Result, bool)

	// All returns an iterator over the remaining matches.
	All() iter.Seq[Result]
}

// Searcher is anything that can scan a text for matches: a *Pattern or a
// *Group.
type Searcher interface {
	NewFinder(text string, from, to int) Finder
}

// Group searches for several patterns at once.
//
// Matches of all members are reported in document order and never overlap.
// A Group is itself a Searcher, so groups nest.
//
// A Group is immutable and safe for concurrent use.
type Group struct {
	searchers []Searcher
	patterns  []*Pattern // set for lock-step groups
	span      int
	logger    *slog.Logger
}

// Combine groups searchers into one.
//
// When every searcher is a *Pattern the group scans the text once, feeding
// each character to every pattern's automaton in argument order (lock-step).
// Otherwise each searcher runs its own finder and the group merges their
// matches by position.
//
// Returns ErrNoPatterns for an empty list and an *ArgumentError for a nil
// searcher.
//
// Example:
//
//	g, err := fuzzy.Combine(fuzzy.MustCompile("Duis", 1), fuzzy.MustCompile("dolor", 1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for r := range g.All(text) {
//	    fmt.Println(r.Pattern(), r.Start())
//	}
func Combine(searchers ...Searcher) (*Group, error) {
	if err := checkSearchers(searchers); err != nil {
		return nil, err
	}
	for _, s := range searchers {
		if _, ok := s.(*Pattern); !ok {
			return newMergeGroup(searchers), nil
		}
	}
	return CombineLockStep(searchers...)
}

// CombineLockStep groups patterns into a single-pass lock-step scan.
//
// Earlier arguments take priority when several patterns accept at the same
// character. Returns an *ArgumentError wrapping ErrNotLockStep for a searcher
// that is not a *Pattern.
func CombineLockStep(searchers ...Searcher) (*Group, error) {
	if err := checkSearchers(searchers); err != nil {
		return nil, err
	}

	patterns := make([]*Pattern, len(searchers))
	span := 0
	for i, s := range searchers {
		p, ok := s.(*Pattern)
		if !ok {
			return nil, &ArgumentError{Index: i, Err: ErrNotLockStep}
		}
		patterns[i] = p
		span = max(span, p.Len()+p.MaxDistance())
	}

	g := &Group{
		searchers: searchers,
		patterns:  patterns,
		span:      span,
		logger:    patterns[0].logger,
	}
	g.logger.Debug("fuzzy: patterns combined",
		slog.String("strategy", "lock-step"),
		slog.Int("patterns", len(patterns)),
	)
	return g, nil
}

// CombineMerge groups searchers into an ordered merge of independent
// finders.
func CombineMerge(searchers ...Searcher) (*Group, error) {
	if err := checkSearchers(searchers); err != nil {
		return nil, err
	}
	return newMergeGroup(searchers), nil
}

func newMergeGroup(searchers []Searcher) *Group {
	g := &Group{
		searchers: searchers,
		logger:    searcherLogger(searchers[0]),
	}
	g.logger.Debug("fuzzy: patterns combined",
		slog.String("strategy", "merge"),
		slog.Int("searchers", len(searchers)),
	)
	return g
}

func checkSearchers(searchers []Searcher) error {
	if len(searchers) == 0 {
		return ErrNoPatterns
	}
	for i, s := range searchers {
		if isNilSearcher(s) {
			return &ArgumentError{Index: i, Err: ErrNilPattern}
		}
	}
	return nil
}

// isNilSearcher also catches typed nil pointers stored in the interface.
func isNilSearcher(s Searcher) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Pattern:
		return v == nil
	case *Group:
		return v == nil
	default:
		return false
	}
}

func searcherLogger(s Searcher) *slog.Logger {
	switch v := s.(type) {
	case *Pattern:
		return v.logger
	case *Group:
		return v.logger
	default:
		return DefaultConfig().logger()
	}
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.searchers)
}

// LockStep reports whether the group scans its patterns in lock-step.
func (g *Group) LockStep() bool {
	return g.patterns != nil
}

// String lists the members.
func (g *Group) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, s := range g.searchers {
		if i > 0 {
			b.WriteString(" | ")
		}
		if str, ok := s.(interface{ String() string }); ok {
			b.WriteString(str.String())
		} else {
			b.WriteByte('?')
		}
	}
	b.WriteByte(')')
	return b.String()
}

// NewFinder implements Searcher.
func (g *Group) NewFinder(text string, from, to int) Finder {
	if g.LockStep() {
		return newLockStepFinder(g, text, from, to)
	}
	return newMergeFinder(g, text, from, to)
}

// Matcher returns a finder over the whole text.
func (g *Group) Matcher(text string) Finder {
	return g.NewFinder(text, 0, len(text))
}

// All returns an iterator over all matches of all members in text.
func (g *Group) All(text string) iter.Seq[Result] {
	return g.Matcher(text).All()
}
