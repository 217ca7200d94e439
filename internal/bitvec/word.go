package bitvec

import "math/bits"

// Uint is the set of machine words a fixed-width tier can be built on.
type Uint interface {
	~uint32 | ~uint64
}

// Word implements Ops over a single machine word.
//
// Word is a small value type; copying it is cheap and it holds no buffers,
// so one Word may be shared by any number of automata.
type Word[W Uint] struct {
	width int
	top   W // bit width-1
	pad   W // bits >= width
}

// Half is the 32-bit tier.
type Half = Word[uint32]

// Full is the 64-bit tier.
type Full = Word[uint64]

// NewWord returns the word ops for vectors of the given width.
// Panics if width is not in [1, Capacity[W]()].
func NewWord[W Uint](width int) Word[W] {
	capacity := Capacity[W]()
	if width < 1 || width > capacity {
		panic("bitvec: width out of range for word tier")
	}
	return Word[W]{
		width: width,
		top:   W(1) << uint(width-1),
		pad:   ^W(0) << uint(width), // 0 when width == capacity
	}
}

// Capacity returns the number of bits in W.
func Capacity[W Uint]() int {
	return bits.Len64(uint64(^W(0)))
}

// Width implements Ops.
func (w Word[W]) Width() int { return w.width }

// New implements Ops.
func (w Word[W]) New() W { return ^W(0) }

// Fill implements Ops.
func (w Word[W]) Fill(W) W { return ^W(0) }

// ClearBit implements Ops.
func (w Word[W]) ClearBit(dst W, i int) W {
	return dst &^ (W(1) << uint(i))
}

// SetBit implements Ops.
func (w Word[W]) SetBit(dst W, i int) W {
	return dst | W(1)<<uint(i)
}

// Shl1 implements Ops.
func (w Word[W]) Shl1(_, a W) W { return a<<1 | w.pad }

// And implements Ops.
func (w Word[W]) And(_, a, b W) W { return a & b }

// Or implements Ops.
func (w Word[W]) Or(_, a, b W) W { return a | b }

// Not implements Ops.
func (w Word[W]) Not(_, a W) W { return ^a | w.pad }

// Copy implements Ops.
func (w Word[W]) Copy(_, a W) W { return a }

// Less implements Ops.
func (w Word[W]) Less(a, b W) bool { return a < b }

// GreaterOrEqual implements Ops.
func (w Word[W]) GreaterOrEqual(a, b W) bool { return a >= b }

// IsAllOnes implements Ops.
func (w Word[W]) IsAllOnes(a W) bool { return a == ^W(0) }

// TopBitClear implements Ops.
func (w Word[W]) TopBitClear(a W) bool { return a&w.top == 0 }

// BitClear implements Ops.
func (w Word[W]) BitClear(a W, i int) bool { return a&(W(1)<<uint(i)) == 0 }
