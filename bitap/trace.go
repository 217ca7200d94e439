package bitap

import "github.com/coregx/fuzzy/internal/bitvec"

// tracer recovers the window and the edits of a match from its end.
//
// It runs the reversed pattern backwards over the text, anchored at the end
// of the match, for at most len(pattern)+limit runes. Column j holds one row
// per level: bit i of row L is alive when the last i+1 pattern runes align
// with the last j text runes with at most L edits. The columns are kept, so
// the alignment is read back from them without any other table.
type tracer[V any, O bitvec.Ops[V]] struct {
	prog   *Program
	ops    O
	masks  []V // reversed pattern
	absent V
	tmp    V

	cols  [][]V // cols[j][L]
	seen  []V   // mask of the j-th rune before the end, at j
	trail []int8
}

func newTracer[V any, O bitvec.Ops[V]](p *Program, ops O, masks []V, absent V) *tracer[V, O] {
	return &tracer[V, O]{
		prog:   p,
		ops:    ops,
		masks:  masks,
		absent: absent,
		tmp:    ops.New(),
	}
}

// grow makes room for columns 0..n. Columns are allocated on first use and
// kept for later traces.
func (t *tracer[V, O]) grow(n int) {
	for len(t.cols) <= n {
		col := make([]V, t.prog.k+1)
		for level := range col {
			col[level] = t.ops.New()
		}
		t.cols = append(t.cols, col)
		t.seen = append(t.seen, t.absent)
	}
}

func (t *tracer[V, O]) run(rev []rune, limit int) (int, []int8) {
	if limit < 0 {
		return -1, nil
	}

	o := t.ops
	n := min(len(rev), len(t.prog.runes)+limit)
	t.grow(n)

	// Column 0: the last i pattern runes cost i insertions.
	col := t.cols[0]
	col[0] = o.Fill(col[0])
	for level := 1; level <= limit; level++ {
		col[level] = o.Shl1(col[level], col[level-1])
	}

	best, dist := -1, limit+1
	first := 1 // distance of the last pattern rune against the last j runes
	for j := 1; j <= n; j++ {
		mask := t.absent
		if class, ok := t.prog.table.Lookup(rev[j-1]); ok {
			mask = t.masks[class]
		}
		t.seen[j] = mask

		cost := 1
		if o.BitClear(mask, 0) {
			cost = 0
		}
		first = min(j-1+cost, j+1, first+1)

		// Only a shorter distance can beat the window found so far.
		top := min(limit, dist-1)
		prev, next := t.cols[j-1], t.cols[j]
		for level := 0; level <= top; level++ {
			row := o.Or(next[level], o.Shl1(next[level], prev[level]), mask)
			if level > 0 {
				row = o.And(row, row, prev[level-1])
				t.tmp = o.Shl1(t.tmp, prev[level-1])
				row = o.And(row, row, t.tmp)
				t.tmp = o.Shl1(t.tmp, next[level-1])
				row = o.And(row, row, t.tmp)
			}
			// The shifts bring in an alive bit 0, which only holds while
			// the anchor is close enough.
			if first <= level {
				row = o.ClearBit(row, 0)
			} else {
				row = o.SetBit(row, 0)
			}
			next[level] = row

			if o.TopBitClear(row) {
				best, dist = j, level
				break
			}
		}

		if dist == 0 {
			break
		}
		// Once every row is dead past the anchor's reach, none revives.
		if top = min(limit, dist-1); j > top && o.IsAllOnes(next[top]) {
			break
		}
	}

	if best < 0 {
		return -1, nil
	}
	return dist, t.walk(best, dist)
}

// walk reads the alignment back from column j at distance d, which must be
// exact, towards the anchor. Steps come out in text order.
func (t *tracer[V, O]) walk(j, d int) []int8 {
	trail := t.trail[:0]
	i := len(t.prog.runes)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && t.ops.BitClear(t.seen[j], i-1) && t.within(i-1, j-1, d):
			i, j = i-1, j-1
		case i > 0 && j > 0 && t.within(i-1, j-1, d-1):
			trail = append(trail, Substitution)
			i, j, d = i-1, j-1, d-1
		case i > 0 && t.within(i-1, j, d-1):
			trail = append(trail, Insertion)
			i, d = i-1, d-1
		default:
			trail = append(trail, Deletion)
			j, d = j-1, d-1
		}
	}
	t.trail = trail
	return trail
}

// within reports whether the last i pattern runes align with the last j text
// runes with at most d edits.
func (t *tracer[V, O]) within(i, j, d int) bool {
	switch {
	case d < 0:
		return false
	case i == 0:
		return j <= d
	default:
		return t.ops.BitClear(t.cols[j][d], i-1)
	}
}
