package literal

import (
	"bytes"
	"testing"
)

// TestLiteralBasic tests basic Literal type functionality
func TestLiteralBasic(t *testing.T) {
	tests := []struct {
		name    string
		bytes   []byte
		pos     int
		wantLen int
		wantStr string
	}{
		{
			name:    "simple literal",
			bytes:   []byte("hello"),
			pos:     0,
			wantLen: 5,
			wantStr: "literal{hello, pos=0}",
		},
		{
			name:    "inner piece",
			bytes:   []byte("test"),
			pos:     7,
			wantLen: 4,
			wantStr: "literal{test, pos=7}",
		},
		{
			name:    "multi-byte rune",
			bytes:   []byte("ß"),
			pos:     4,
			wantLen: 2,
			wantStr: "literal{ß, pos=4}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := NewLiteral(tt.bytes, tt.pos)

			if got := lit.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}

			if got := lit.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestSeqBasics(t *testing.T) {
	var nilSeq *Seq
	if !nilSeq.IsEmpty() || nilSeq.Len() != 0 || nilSeq.MinLen() != 0 {
		t.Error("nil Seq should be empty")
	}

	seq := NewSeq(
		NewLiteral([]byte("first"), 0),
		NewLiteral([]byte("xy"), 5),
	)
	if seq.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	if got := seq.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := seq.MinLen(); got != 2 {
		t.Errorf("MinLen() = %d, want 2", got)
	}
	if got := string(seq.Get(1).Bytes); got != "xy" {
		t.Errorf("Get(1) = %q, want %q", got, "xy")
	}
}

func TestSeqMinimize(t *testing.T) {
	tests := []struct {
		name string
		lits []string
		want []string
	}{
		{"distinct", []string{"hello", "world"}, []string{"hello", "world"}},
		{"duplicates", []string{"ab", "ab", "ab"}, []string{"ab"}},
		{"contained", []string{"cabd", "ab"}, []string{"ab"}},
		{"prefix", []string{"foo", "foobar"}, []string{"foo"}},
		{"mixed", []string{"xyz", "y", "abc"}, []string{"y", "abc"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lits []Literal
			for i, s := range tt.lits {
				lits = append(lits, NewLiteral([]byte(s), i))
			}
			seq := NewSeq(lits...)
			seq.Minimize()

			if seq.Len() != len(tt.want) {
				t.Fatalf("Minimize() left %d literals, want %d", seq.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				if got := string(seq.Get(i).Bytes); got != want {
					t.Errorf("literal %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		pattern string
		k       int
		want    []string
		wantPos []int
	}{
		{"abcdef", 2, []string{"ab", "cd", "ef"}, []int{0, 2, 4}},
		{"test", 1, []string{"te", "st"}, []int{0, 2}},
		{"hello", 1, []string{"he", "llo"}, []int{0, 2}},
		{"straße", 2, []string{"st", "ra", "ße"}, []int{0, 2, 4}},
		{"abc", 0, []string{"abc"}, []int{0}},
		{"ab", 1, []string{"a", "b"}, []int{0, 1}},
		{"ab", 2, nil, nil},
	}

	for _, tt := range tests {
		seq := Partition([]rune(tt.pattern), tt.k)
		if tt.want == nil {
			if seq != nil {
				t.Errorf("Partition(%q, %d) = %d pieces, want nil", tt.pattern, tt.k, seq.Len())
			}
			continue
		}

		if seq.Len() != len(tt.want) {
			t.Fatalf("Partition(%q, %d) = %d pieces, want %d", tt.pattern, tt.k, seq.Len(), len(tt.want))
		}
		for i := range tt.want {
			lit := seq.Get(i)
			if !bytes.Equal(lit.Bytes, []byte(tt.want[i])) || lit.Pos != tt.wantPos[i] {
				t.Errorf("Partition(%q, %d)[%d] = %v, want %q at %d",
					tt.pattern, tt.k, i, lit, tt.want[i], tt.wantPos[i])
			}
		}
	}
}

func BenchmarkMinimize(b *testing.B) {
	pattern := []rune("the quick brown fox jumps over the lazy dog")
	for b.Loop() {
		seq := Partition(pattern, 8)
		seq.Minimize()
	}
}
