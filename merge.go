package fuzzy

import (
	"container/heap"
	"iter"
)

// mergeEntry is a member finder positioned on its next match.
type mergeEntry struct {
	finder Finder
	index  int
	start  int
	end    int
}

// mergeQueue orders entries by (start, end, index).
type mergeQueue []*mergeEntry

func (q mergeQueue) Len() int { return len(q) }

func (q mergeQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.start != b.start {
		return a.start < b.start
	}
	if a.end != b.end {
		return a.end < b.end
	}
	return a.index < b.index
}

func (q mergeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *mergeQueue) Push(x any) { *q = append(*q, x.(*mergeEntry)) }

func (q *mergeQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// mergeFinder merges the matches of independent finders into document
// order.
//
// Every live member is kept positioned on its next match. The earliest one
// is reported; a member whose match overlaps the last reported one is
// restarted at its end.
type mergeFinder struct {
	finders []Finder
	queue   mergeQueue

	text string
	to   int

	current *mergeEntry // reported last; advanced on the next Find
	lastEnd int
	matched bool
}

func newMergeFinder(g *Group, text string, from, to int) *mergeFinder {
	m := &mergeFinder{
		finders: make([]Finder, len(g.searchers)),
		queue:   make(mergeQueue, 0, len(g.searchers)),
	}
	for i, s := range g.searchers {
		m.finders[i] = s.NewFinder(text, from, to)
	}
	m.prime(text, from, to, false)
	return m
}

// Reset implements Finder.
func (m *mergeFinder) Reset(text string, from, to int) {
	m.prime(text, from, to, true)
}

// prime positions every member on its first match.
func (m *mergeFinder) prime(text string, from, to int, reset bool) {
	from, to = clampRange(len(text), from, to)
	m.text = text
	m.to = to
	m.queue = m.queue[:0]
	m.current = nil
	m.lastEnd = from
	m.matched = false

	for i, f := range m.finders {
		if reset {
			f.Reset(text, from, to)
		}
		if f.Find() {
			m.queue = append(m.queue, &mergeEntry{
				finder: f,
				index:  i,
				start:  f.Start(),
				end:    f.End(),
			})
		}
	}
	heap.Init(&m.queue)
}

// Find implements Finder.
func (m *mergeFinder) Find() bool {
	if e := m.current; e != nil {
		m.current = nil
		m.advance(e, e.finder.Find())
	}

	for m.queue.Len() > 0 {
		head := m.queue[0]
		if m.matched && (head.start < m.lastEnd || head.end <= m.lastEnd) {
			head.finder.Reset(m.text, m.lastEnd, m.to)
			if head.finder.Find() {
				head.start, head.end = head.finder.Start(), head.finder.End()
				heap.Fix(&m.queue, 0)
			} else {
				heap.Pop(&m.queue)
			}
			continue
		}

		m.current = heap.Pop(&m.queue).(*mergeEntry)
		m.lastEnd = m.current.end
		m.matched = true
		return true
	}

	m.current = nil
	m.matched = false
	return false
}

// advance requeues e after its finder moved, or drops it when exhausted.
func (m *mergeFinder) advance(e *mergeEntry, ok bool) {
	if !ok {
		return
	}
	e.start, e.end = e.finder.Start(), e.finder.End()
	heap.Push(&m.queue, e)
}

func (m *mergeFinder) finder(op string) Finder {
	if m.current == nil {
		panic(&StateError{Op: op})
	}
	return m.current.finder
}

// Start implements Finder.
func (m *mergeFinder) Start() int {
	return m.finder("Start").Start()
}

// End implements Finder.
func (m *mergeFinder) End() int {
	return m.finder("End").End()
}

// Distance implements Finder.
func (m *mergeFinder) Distance() int {
	return m.finder("Distance").Distance()
}

// FoundText implements Finder.
func (m *mergeFinder) FoundText() string {
	return m.finder("FoundText").FoundText()
}

// Pattern implements Finder.
func (m *mergeFinder) Pattern() *Pattern {
	return m.finder("Pattern").Pattern()
}

// Match implements Finder.
func (m *mergeFinder) Match() (Result, bool) {
	if m.current == nil {
		return Result{}, false
	}
	return m.current.finder.Match()
}

// All implements Finder.
func (m *mergeFinder) All() iter.Seq[Result] {
	return findAll(m)
}

// findAll iterates over the remaining matches of f.
func findAll(f Finder) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for f.Find() {
			r, _ := f.Match()
			if !yield(r) {
				return
			}
		}
	}
}
