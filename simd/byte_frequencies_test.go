package simd

import (
	"testing"
)

func TestByteFrequencies(t *testing.T) {
	// Space should be the most common (rank 255)
	if ByteFrequencies[' '] != 255 {
		t.Errorf("Space should have rank 255, got %d", ByteFrequencies[' '])
	}

	for _, b := range []byte("@QZz") {
		if ByteFrequencies[b] > 50 {
			t.Errorf("%q should have low rank (<50), got %d", b, ByteFrequencies[b])
		}
	}
}

func TestByteRank(t *testing.T) {
	tests := []struct {
		b    byte
		want byte
	}{
		{' ', 255},
		{'@', 25},
		{'e', 245},
	}

	for _, tt := range tests {
		got := ByteRank(tt.b)
		if got != tt.want {
			t.Errorf("ByteRank(%q) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestSelectRareByte(t *testing.T) {
	tests := []struct {
		needle    string
		wantByte  byte
		wantIndex int
	}{
		{"@example.com", '@', 0},
		{"hello", 'h', 0},
		{"test", 's', 2},
		{"aaaa", 'a', 0},
		{"ad\xc3\x9f", '\xc3', 2},
	}

	for _, tt := range tests {
		gotByte, gotIndex := selectRareByte([]byte(tt.needle))
		if gotByte != tt.wantByte || gotIndex != tt.wantIndex {
			t.Errorf("selectRareByte(%q) = (%q, %d), want (%q, %d)",
				tt.needle, gotByte, gotIndex, tt.wantByte, tt.wantIndex)
		}
	}
}
