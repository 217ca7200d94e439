// Package simd provides the byte search primitives behind the exact-piece
// prefilters.
//
// The implementations are pure Go and use SWAR (SIMD Within A Register):
// eight haystack bytes are tested at once with uint64 arithmetic. They run on
// every platform without assembly.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64
//  2. XOR each 8-byte chunk with it (matching bytes become 0x00)
//  3. Detect zero bytes with (v - 0x01..) & ^v & 0x80..
//  4. The trailing zero count of the result locates the first match
//
// Inputs shorter than 8 bytes and the tail of longer ones are scanned byte by
// byte.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	needleMask := uint64(needle) * lo8

	idx := 0
	for idx+8 <= n {
		xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ needleMask
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}
