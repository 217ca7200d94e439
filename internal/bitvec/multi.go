package bitvec

import "math"

// Multi implements Ops over []uint64 vectors of arbitrary width.
//
// Word 0 holds bits 0..63, word 1 holds bits 64..127 and so on. All vectors
// passed to one Multi must have been allocated by its New method.
type Multi struct {
	width int
	words int
	top   uint64 // top bit within the last word
	pad   uint64 // padding bits within the last word
}

// NewMulti returns the multi-word ops for vectors of the given width.
// Panics if width < 1.
func NewMulti(width int) Multi {
	if width < 1 {
		panic("bitvec: width must be positive")
	}
	words := (width + 63) / 64
	used := width - (words-1)*64
	return Multi{
		width: width,
		words: words,
		top:   uint64(1) << uint(used-1),
		pad:   ^uint64(0) << uint(used),
	}
}

// Width implements Ops.
func (m Multi) Width() int { return m.width }

// Words returns the number of uint64 words per vector.
func (m Multi) Words() int { return m.words }

// New implements Ops.
func (m Multi) New() []uint64 {
	return m.Fill(make([]uint64, m.words))
}

// Fill implements Ops.
func (m Multi) Fill(dst []uint64) []uint64 {
	for i := range dst {
		dst[i] = math.MaxUint64
	}
	return dst
}

// ClearBit implements Ops.
func (m Multi) ClearBit(dst []uint64, i int) []uint64 {
	dst[i/64] &^= uint64(1) << uint(i%64)
	return dst
}

// SetBit implements Ops.
func (m Multi) SetBit(dst []uint64, i int) []uint64 {
	dst[i/64] |= uint64(1) << uint(i%64)
	return dst
}

// Shl1 implements Ops.
//
// Words are processed from the most significant down so that dst may alias a.
func (m Multi) Shl1(dst, a []uint64) []uint64 {
	for i := m.words - 1; i > 0; i-- {
		dst[i] = a[i]<<1 | a[i-1]>>63
	}
	dst[0] = a[0] << 1
	dst[m.words-1] |= m.pad
	return dst
}

// And implements Ops.
func (m Multi) And(dst, a, b []uint64) []uint64 {
	for i := 0; i < m.words; i++ {
		dst[i] = a[i] & b[i]
	}
	return dst
}

// Or implements Ops.
func (m Multi) Or(dst, a, b []uint64) []uint64 {
	for i := 0; i < m.words; i++ {
		dst[i] = a[i] | b[i]
	}
	return dst
}

// Not implements Ops.
func (m Multi) Not(dst, a []uint64) []uint64 {
	for i := 0; i < m.words; i++ {
		dst[i] = ^a[i]
	}
	dst[m.words-1] |= m.pad
	return dst
}

// Copy implements Ops.
func (m Multi) Copy(dst, a []uint64) []uint64 {
	copy(dst, a)
	return dst
}

// Less implements Ops.
func (m Multi) Less(a, b []uint64) bool {
	for i := m.words - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// GreaterOrEqual implements Ops.
func (m Multi) GreaterOrEqual(a, b []uint64) bool {
	return !m.Less(a, b)
}

// IsAllOnes implements Ops.
func (m Multi) IsAllOnes(a []uint64) bool {
	for i := 0; i < m.words; i++ {
		if a[i] != math.MaxUint64 {
			return false
		}
	}
	return true
}

// TopBitClear implements Ops.
func (m Multi) TopBitClear(a []uint64) bool {
	return a[m.words-1]&m.top == 0
}

// BitClear implements Ops.
func (m Multi) BitClear(a []uint64, i int) bool {
	return a[i/64]&(uint64(1)<<uint(i%64)) == 0
}
