// Package bitap implements the bit-parallel k-difference matching automaton.
//
// The automaton keeps k+1 rows of pattern-width bit vectors, one per edit
// distance level, and advances all of them with a handful of shifts and
// bitwise operations per input rune (the Wu-Manber extension of Shift-Or).
// A row whose top bit clears signals that the whole pattern aligns against a
// suffix of the text read so far with at most that many edits.
//
// The rows only say where a match ends. On acceptance, Trace runs the reversed
// pattern backwards from the end, over at most len(pattern)+k runes, and
// reads back the length-change trail of the cheapest window: one entry per
// edit (substitution 0, insertion +1, deletion -1). The trail is the way back
// from a match's end to its start:
//
//	start = end - len(pattern) + sum(trail)
//
// The automaton is written once against the bitvec capability set and
// instantiated for a 32-bit word, a 64-bit word and a multi-word vector. All
// tiers produce identical results.
//
// Example:
//
//	prog, _ := bitap.Compile([]rune("test"), 1, false, bitap.TierAuto)
//	a := prog.New()
//	for _, r := range "tost" {
//	    if d := a.Step(r, prog.MaxDistance()); d >= 0 {
//	        fmt.Println("match with distance", d) // match with distance 1
//	    }
//	}
package bitap

import (
	"errors"

	"github.com/coregx/fuzzy/internal/bitvec"
	"github.com/coregx/fuzzy/mask"
)

var (
	// ErrEmptyPattern indicates a pattern without any rune.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrNegativeDistance indicates a maximum distance below zero.
	ErrNegativeDistance = errors.New("negative maximum distance")
)

// Program is the compiled, immutable form of a fuzzy pattern.
//
// A Program holds the character mask table and, per character class, the
// position mask of the pattern and of its reverse. It is safe for concurrent use; each scan creates its
// own Automaton via New.
type Program struct {
	runes []rune
	k     int
	table *mask.Table
	tier  Tier

	factory func() Automaton
}

// Compile builds a Program for pattern with maximum edit distance k.
//
// tier is a request: TierAuto (or any tier too narrow for the pattern)
// resolves to the narrowest tier that fits.
func Compile(pattern []rune, k int, fold bool, tier Tier) (*Program, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if k < 0 {
		return nil, ErrNegativeDistance
	}

	runes := make([]rune, len(pattern))
	copy(runes, pattern)

	p := &Program{
		runes: runes,
		k:     k,
		table: mask.New(runes, fold),
		tier:  SelectTier(len(runes), tier),
	}

	width := len(runes)
	switch p.tier {
	case TierHalf:
		build[uint32](p, bitvec.NewWord[uint32](width))
	case TierFull:
		build[uint64](p, bitvec.NewWord[uint64](width))
	default:
		build[[]uint64](p, bitvec.NewMulti(width))
	}

	return p, nil
}

// build precomputes the position masks of the pattern and of its reverse for
// one tier and installs the automaton factory.
func build[V any, O bitvec.Ops[V]](p *Program, ops O) {
	last := len(p.runes) - 1
	masks := make([]V, p.table.Classes())
	reversed := make([]V, p.table.Classes())
	for class := range masks {
		v, r := ops.New(), ops.New()
		for _, pos := range p.table.Positions(class) {
			v = ops.ClearBit(v, pos)
			r = ops.ClearBit(r, last-pos)
		}
		masks[class], reversed[class] = v, r
	}
	absent := ops.New()

	p.factory = func() Automaton {
		return newMachine(p, ops, masks, reversed, absent)
	}
}

// New returns a fresh automaton in its initial state.
func (p *Program) New() Automaton {
	return p.factory()
}

// Len returns the pattern length in runes.
func (p *Program) Len() int {
	return len(p.runes)
}

// MaxDistance returns the maximum edit distance k.
func (p *Program) MaxDistance() int {
	return p.k
}

// Fold reports whether matching is case-insensitive.
func (p *Program) Fold() bool {
	return p.table.Fold()
}

// Tier returns the resolved bit-vector tier.
func (p *Program) Tier() Tier {
	return p.tier
}

// Runes returns the pattern runes. The slice is shared and must not be
// modified.
func (p *Program) Runes() []rune {
	return p.runes
}

// Table returns the character mask table.
func (p *Program) Table() *mask.Table {
	return p.table
}
