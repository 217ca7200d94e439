// Package mask builds the character table of a fuzzy pattern.
//
// The table assigns every distinct pattern rune a class and records the
// pattern positions the rune occupies. The bit-parallel automaton turns each
// class into a position bitmask (0 at every occupied position); a rune with no
// class matches nothing and maps to the all-ones mask.
//
// The idea is the same as the byte equivalence classes of a DFA alphabet:
// runes that the pattern never distinguishes share one entry, so the automaton
// keeps one mask per class instead of one per rune.
//
// For case-insensitive tables every rune of a unicode.SimpleFold orbit maps to
// the same class, so 'k', 'K' and the Kelvin sign share one mask.
package mask

import "unicode"

// Table maps runes to pattern position classes.
//
// A Table is immutable after New and safe for concurrent use.
type Table struct {
	// ascii holds class+1 for every ASCII rune, 0 when absent.
	ascii [128]int32

	// other holds classes for non-ASCII keys (folded when fold is set).
	other map[rune]int

	positions [][]int
	fold      bool
}

// New builds the table for the given pattern runes.
//
// When fold is true, lookups are case-insensitive.
func New(pattern []rune, fold bool) *Table {
	t := &Table{fold: fold}
	classes := make(map[rune]int, len(pattern))

	for pos, r := range pattern {
		key := t.key(r)
		class, ok := classes[key]
		if !ok {
			class = len(t.positions)
			classes[key] = class
			t.positions = append(t.positions, nil)
		}
		t.positions[class] = append(t.positions[class], pos)
	}

	for b := rune(0); b < 128; b++ {
		if class, ok := classes[t.key(b)]; ok {
			t.ascii[b] = int32(class + 1)
		}
	}

	for key, class := range classes {
		if key >= 128 || fold {
			if t.other == nil {
				t.other = make(map[rune]int)
			}
			t.other[key] = class
		}
	}

	return t
}

// Lookup returns the class of r, or false if r does not occur in the pattern.
func (t *Table) Lookup(r rune) (int, bool) {
	if r >= 0 && r < 128 {
		c := t.ascii[r]
		return int(c) - 1, c != 0
	}
	if t.other == nil {
		return -1, false
	}
	class, ok := t.other[t.key(r)]
	if !ok {
		return -1, false
	}
	return class, true
}

// Classes returns the number of distinct classes.
func (t *Table) Classes() int {
	return len(t.positions)
}

// Positions returns the pattern positions of a class, in increasing order.
// The returned slice is shared and must not be modified.
func (t *Table) Positions(class int) []int {
	return t.positions[class]
}

// Fold reports whether the table is case-insensitive.
func (t *Table) Fold() bool {
	return t.fold
}

// Equal reports whether a and b are the same character under the table's
// case sensitivity.
func (t *Table) Equal(a, b rune) bool {
	return a == b || (t.fold && Fold(a) == Fold(b))
}

func (t *Table) key(r rune) rune {
	if t.fold {
		return Fold(r)
	}
	return r
}

// Fold returns the canonical representative of r's case-folding orbit: the
// smallest rune reachable through unicode.SimpleFold.
func Fold(r rune) rune {
	lowest := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lowest {
			lowest = f
		}
	}
	return lowest
}
