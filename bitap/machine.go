package bitap

import "github.com/coregx/fuzzy/internal/bitvec"

// Length changes recorded in a trail, one entry per edit.
const (
	// Substitution replaces a pattern rune with a different text rune.
	Substitution int8 = 0

	// Insertion is a pattern rune with no counterpart in the text; the
	// matched window is one rune shorter than the pattern.
	Insertion int8 = +1

	// Deletion is a text rune with no counterpart in the pattern; the
	// matched window is one rune longer than the pattern.
	Deletion int8 = -1
)

// Automaton is the per-scan state of a Program.
//
// An Automaton is not safe for concurrent use.
type Automaton interface {
	// Reset returns the automaton to its initial state.
	Reset()

	// Step consumes one rune and returns the lowest level <= limit whose row
	// accepts, or -1. Levels above the accepting one are not advanced; the
	// caller must either keep stepping with a limit below the returned level
	// or Reset.
	Step(r rune, limit int) int

	// Flush runs the trailing-insertion steps at the end of the text: the
	// rows are shifted without consuming a rune, each shift costing one
	// edit. It returns the lowest distance <= limit at which the pattern
	// aligns with the text read so far, or -1. The rows are not modified.
	Flush(limit int) int

	// Trace aligns the pattern against the end of the text read so far.
	// rev holds the runes before the end, nearest first, and must reach
	// back to the start of the scan or cover Len()+limit runes.
	//
	// It returns the lowest distance <= limit of a window ending there and
	// the length-change trail of that window, in text order; the window
	// starts len(pattern)-Delta(trail) runes before the end. If several
	// windows share the distance, the shortest wins. The trail is
	// overwritten by the next Trace. Returns -1 if no window is within limit.
	Trace(rev []rune, limit int) (int, []int8)

	// Program returns the program the automaton runs.
	Program() *Program
}

// Delta returns the net length change of a trail.
func Delta(trail []int8) int {
	sum := 0
	for _, c := range trail {
		sum += int(c)
	}
	return sum
}

// machine is the automaton for one bit-vector tier.
//
// A row bit at level L is alive when the pattern prefix up to that bit aligns
// with a suffix of the text read so far with at most L edits, the last of
// which consumed the current rune. Alignments that end with pattern runes
// missing from the text live in the closure of the rows (see closure) and
// surface either one rune later as a substitution or in Flush.
//
// Rows live in two buffer sets; Step writes the set that is not current and
// flips the index, so nothing is copied or allocated per rune.
type machine[V any, O bitvec.Ops[V]] struct {
	prog   *Program
	ops    O
	masks  []V
	absent V

	rows [2][]V
	cur  int

	// scratch vectors
	closure, sub, ins, mat V

	trace *tracer[V, O]
}

func newMachine[V any, O bitvec.Ops[V]](p *Program, ops O, masks, reversed []V, absent V) *machine[V, O] {
	m := &machine[V, O]{
		prog:    p,
		ops:     ops,
		masks:   masks,
		absent:  absent,
		closure: ops.New(),
		sub:     ops.New(),
		ins:     ops.New(),
		mat:     ops.New(),
		trace:   newTracer(p, ops, reversed, absent),
	}

	for b := range m.rows {
		m.rows[b] = make([]V, p.k+1)
		for level := range m.rows[b] {
			m.rows[b][level] = ops.New()
		}
	}

	m.Reset()
	return m
}

// Reset implements Automaton.
//
// No rune has been consumed, so every row is dead; the closure still holds
// the alignments that drop the first pattern runes.
func (m *machine[V, O]) Reset() {
	rows := m.rows[m.cur]
	for level := range rows {
		rows[level] = m.ops.Fill(rows[level])
	}
}

// Step implements Automaton.
//
// Level L combines four candidates built from the rows before r:
//
//	deletion     = closure(L-1)            r is an extra text rune
//	substitution = deletion << 1           r replaces a pattern rune
//	insertion    = substitution << 1 | M   a pattern rune is missing before r
//	match        = row(L) << 1 | M         r matches the next pattern rune
//
// where M is the position mask of r and closure(L-1) adds to row L-1 the
// alignments that end with missing pattern runes.
func (m *machine[V, O]) Step(r rune, limit int) int {
	limit = min(limit, m.prog.k)

	mask := m.absent
	if class, ok := m.prog.table.Lookup(r); ok {
		mask = m.masks[class]
	}

	o := m.ops
	prev, next := m.rows[m.cur], m.rows[m.cur^1]
	m.cur ^= 1

	next[0] = o.Or(next[0], o.Shl1(next[0], prev[0]), mask)
	if o.TopBitClear(next[0]) {
		return 0
	}

	closure := o.Copy(m.closure, prev[0])
	for level := 1; level <= limit; level++ {
		sub := o.Shl1(m.sub, closure)
		ins := o.Or(m.ins, o.Shl1(m.ins, sub), mask)
		mat := o.Or(m.mat, o.Shl1(m.mat, prev[level]), mask)

		row := o.And(next[level], closure, sub)
		row = o.And(row, row, ins)
		next[level] = o.And(row, row, mat)

		// closure(level) = row(level) & closure(level-1) << 1
		closure = o.And(closure, prev[level], sub)
		m.closure, m.sub, m.ins, m.mat = closure, sub, ins, mat

		if o.TopBitClear(next[level]) {
			return level
		}
	}

	return -1
}

// Flush implements Automaton.
//
// Shifting row L by t positions drops t trailing pattern runes at a cost of
// t edits. The closure at level L folds all shifts of the rows below it, so
// its top bit is clear exactly when some row L-t accepts after t shifts.
func (m *machine[V, O]) Flush(limit int) int {
	limit = min(limit, m.prog.k)

	o := m.ops
	rows := m.rows[m.cur]
	closure := o.Copy(m.closure, rows[0])
	for level := 0; level <= limit; level++ {
		if level > 0 {
			shifted := o.Shl1(m.sub, closure)
			closure = o.And(closure, rows[level], shifted)
			m.sub = shifted
		}
		m.closure = closure
		if o.TopBitClear(closure) {
			return level
		}
	}
	return -1
}

// Trace implements Automaton.
func (m *machine[V, O]) Trace(rev []rune, limit int) (int, []int8) {
	return m.trace.run(rev, min(limit, m.prog.k))
}

// Program implements Automaton.
func (m *machine[V, O]) Program() *Program {
	return m.prog
}
