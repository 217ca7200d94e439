// Package bitvec provides the bit-word abstraction the bit-parallel matcher is
// written against.
//
// Vectors use the inverted Shift-Or convention: a 0 bit is "alive" and a 1 bit
// is "dead". Bit i of a row vector stands for pattern position i, so the top
// bit (width-1) is the accepting position.
//
// Three tiers implement the same capability set:
//   - Word[uint32]: one 32-bit word (patterns up to 32 runes)
//   - Word[uint64]: one 64-bit word (patterns up to 64 runes)
//   - Multi: a []uint64 of any length (longer patterns)
//
// Bits above the vector width are padding. Every operation keeps the padding
// at 1, so that Less, GreaterOrEqual and IsAllOnes only ever observe the
// meaningful bits and all tiers behave bit-identically.
package bitvec

// Ops is the capability set shared by all width tiers.
//
// Operations take an explicit destination and return the result. Fixed-width
// tiers ignore dst and return a new value; the Multi tier writes into dst and
// returns it. Callers must always use the returned value:
//
//	row = ops.Or(row, ops.Shl1(row, prev), mask)
//
// dst may alias any operand.
type Ops[V any] interface {
	// Width returns the number of meaningful bits.
	Width() int

	// New allocates an all-ones (all dead) vector.
	New() V

	// Fill sets every bit of dst to 1.
	Fill(dst V) V

	// ClearBit sets bit i of dst to 0.
	ClearBit(dst V, i int) V

	// SetBit sets bit i of dst to 1.
	SetBit(dst V, i int) V

	// Shl1 shifts a left by one. Bit 0 of the result is 0.
	Shl1(dst, a V) V

	// And returns a & b.
	And(dst, a, b V) V

	// Or returns a | b.
	Or(dst, a, b V) V

	// Not returns ^a with the padding kept at 1.
	Not(dst, a V) V

	// Copy returns a copy of a.
	Copy(dst, a V) V

	// Less reports whether a < b as unsigned integers.
	Less(a, b V) bool

	// GreaterOrEqual reports whether a >= b as unsigned integers.
	GreaterOrEqual(a, b V) bool

	// IsAllOnes reports whether every bit of a is 1.
	IsAllOnes(a V) bool

	// TopBitClear reports whether bit Width()-1 of a is 0.
	TopBitClear(a V) bool

	// BitClear reports whether bit i of a is 0.
	BitClear(a V, i int) bool
}
