package fuzzy

import (
	"iter"

	"github.com/coregx/fuzzy/bitap"
)

// lockStepFinder scans the text once for all patterns of a group.
//
// Each character is fed to every automaton in priority order. The first one
// to accept is refined on its own; then all automata restart at the end of
// the refined match. At the end of the text the automata are flushed in the
// same order.
type lockStepFinder struct {
	patterns []*Pattern
	autos    []bitap.Automaton
	cur      cursor
	span     int

	hit     hit
	index   int // pattern of the current match
	matched bool
}

func newLockStepFinder(g *Group, text string, from, to int) *lockStepFinder {
	f := &lockStepFinder{
		patterns: g.patterns,
		autos:    make([]bitap.Automaton, len(g.patterns)),
		span:     g.span,
	}
	for i, p := range g.patterns {
		f.autos[i] = p.prog.New()
	}
	f.Reset(text, from, to)
	return f
}

// Reset implements Finder.
func (f *lockStepFinder) Reset(text string, from, to int) {
	f.cur.reset(text, from, to, f.span)
	f.resetAutomata()
	f.matched = false
}

func (f *lockStepFinder) resetAutomata() {
	for _, a := range f.autos {
		a.Reset()
	}
}

// Find implements Finder.
func (f *lockStepFinder) Find() bool {
	f.matched = false
	for {
		r, ok := f.cur.next()
		if !ok {
			break
		}

		for i, a := range f.autos {
			if level := a.Step(r, f.patterns[i].MaxDistance()); level >= 0 {
				return f.report(i, level)
			}
		}
	}

	for i, a := range f.autos {
		if level := flush(a, &f.cur, f.patterns[i].MaxDistance()); level >= 0 {
			return f.report(i, level)
		}
	}
	return false
}

// report refines the acceptance of automaton i and restarts every automaton
// at the end of the match.
func (f *lockStepFinder) report(i, level int) bool {
	a := f.autos[i]
	capture(a, level, &f.cur, &f.hit)
	refine(a, &f.cur, &f.hit)
	f.cur.restart(f.hit.end, f.hit.endRune)
	f.resetAutomata()
	f.index = i
	f.matched = true
	return true
}

func (f *lockStepFinder) mustMatch(op string) {
	if !f.matched {
		panic(&StateError{Op: op})
	}
}

// Start implements Finder.
func (f *lockStepFinder) Start() int {
	f.mustMatch("Start")
	return f.hit.start
}

// End implements Finder.
func (f *lockStepFinder) End() int {
	f.mustMatch("End")
	return f.hit.end
}

// Distance implements Finder.
func (f *lockStepFinder) Distance() int {
	f.mustMatch("Distance")
	return f.hit.distance
}

// FoundText implements Finder.
func (f *lockStepFinder) FoundText() string {
	f.mustMatch("FoundText")
	return f.cur.text[f.hit.start:f.hit.end]
}

// Pattern implements Finder.
func (f *lockStepFinder) Pattern() *Pattern {
	f.mustMatch("Pattern")
	return f.patterns[f.index]
}

// Match implements Finder.
func (f *lockStepFinder) Match() (Result, bool) {
	if !f.matched {
		return Result{}, false
	}
	return newResult(f.patterns[f.index], f.cur.text, &f.hit), true
}

// All implements Finder.
func (f *lockStepFinder) All() iter.Seq[Result] {
	return findAll(f)
}
