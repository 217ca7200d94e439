// Package conv provides conversion helpers for the scanners.
package conv

import "unsafe"

// Bytes returns a read-only byte view of s without copying.
//
// The prefilters search []byte haystacks while matchers hold their text as a
// string; the view lets them share the memory. Callers must never write
// through the returned slice.
func Bytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
