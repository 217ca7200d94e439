package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is equivalent to bytes.Index. It searches for the rarest needle byte
// (ranked by ByteFrequencies) with Memchr and verifies the full needle around
// each candidate, which skips most of a natural-language haystack without
// looking at it twice.
//
// Example:
//
//	pos := simd.Memmem([]byte("hello world"), []byte("world"))
//	// pos == 6
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := selectRareByte(needle)

	// Candidates for the rare byte can only sit in [rareIdx, last]; anything
	// outside leaves no room for the rest of the needle.
	last := haystackLen - needleLen + rareIdx
	searchStart := rareIdx
	for searchStart <= last {
		pos := Memchr(haystack[searchStart:last+1], rareByte)
		if pos == -1 {
			return -1
		}
		candidate := searchStart + pos

		start := candidate - rareIdx
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = candidate + 1
	}
	return -1
}
