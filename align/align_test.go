package align

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/coregx/fuzzy/mask"
)

func replay(pattern, text string, trail []int8, fold, includeMatches bool) []Edit {
	p := []rune(pattern)
	return Replay(mask.New(p, fold), p, []rune(text), trail, includeMatches)
}

// cost counts the edits that are not matches.
func cost(edits []Edit) int {
	n := 0
	for _, e := range edits {
		if e.Op != Match {
			n++
		}
	}
	return n
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"straße", "strasse", 2},
	}

	for _, tt := range tests {
		if got := Distance([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		trail   []int8
		fold    bool
		want    []Edit
	}{
		{
			name:    "substitution",
			pattern: "test", text: "tost", trail: []int8{0},
			want: []Edit{{Substitute, 1, 1, 'e', 'o'}},
		},
		{
			name:    "trailing insertion",
			pattern: "test", text: "tes", trail: []int8{1},
			want: []Edit{{Insert, 3, 3, 't', 0}},
		},
		{
			name:    "two insertions",
			pattern: "aabaa", text: "aaa", trail: []int8{1, 1},
			want: []Edit{{Insert, 2, 2, 'b', 0}, {Insert, 4, 3, 'a', 0}},
		},
		{
			name:    "deletion",
			pattern: "abcd", text: "abXcd", trail: []int8{-1},
			want: []Edit{{Delete, 2, 2, 0, 'X'}},
		},
		{
			name:    "case folded",
			pattern: "Test", text: "tEST", fold: true,
			want: []Edit{},
		},
		{
			name:    "case sensitive",
			pattern: "Te", text: "te", trail: []int8{0},
			want: []Edit{{Substitute, 0, 0, 'T', 't'}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := replay(tt.pattern, tt.text, tt.trail, tt.fold, false)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Replay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReplayIncludeMatches(t *testing.T) {
	got := replay("test", "tost", []int8{0}, false, true)
	want := []Edit{
		{Match, 0, 0, 't', 't'},
		{Substitute, 1, 1, 'e', 'o'},
		{Match, 2, 2, 's', 's'},
		{Match, 3, 3, 't', 't'},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Replay() = %v, want %v", got, want)
	}
}

// TestReplayFallback feeds a trail that cannot explain the window; the
// result must still be an optimal alignment.
func TestReplayFallback(t *testing.T) {
	pattern, text := []rune("abcd"), []rune("bXcd")
	got := replay("abcd", "bXcd", []int8{0}, false, true)
	if c := cost(got); c != Distance(pattern, text) {
		t.Errorf("cost(Replay()) = %d, want %d: %v", c, Distance(pattern, text), got)
	}
	checkScript(t, pattern, text, got)
}

func TestReplayRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 500; iter++ {
		pattern := []rune(randomString(rng, "abc", 1+rng.Intn(8)))
		text := []rune(randomString(rng, "abcd", rng.Intn(10)))

		trail := make([]int8, rng.Intn(3))
		for i := range trail {
			trail[i] = int8(rng.Intn(3) - 1)
		}

		got := replay(string(pattern), string(text), trail, false, true)
		checkScript(t, pattern, text, got)
		if c := cost(got); c < Distance(pattern, text) {
			t.Fatalf("Replay(%q, %q) cost %d below distance", string(pattern), string(text), c)
		}
	}
}

// checkScript verifies that the edits rebuild text from pattern.
func checkScript(t *testing.T, pattern, text []rune, edits []Edit) {
	t.Helper()
	var p, x []rune
	for _, e := range edits {
		switch e.Op {
		case Match, Substitute:
			p = append(p, e.PatternRune)
			x = append(x, e.TextRune)
		case Insert:
			p = append(p, e.PatternRune)
		case Delete:
			x = append(x, e.TextRune)
		}
	}
	if string(p) != string(pattern) || string(x) != string(text) {
		t.Fatalf("script %v rebuilds (%q, %q), want (%q, %q)",
			edits, string(p), string(x), string(pattern), string(text))
	}
}

func TestStrings(t *testing.T) {
	if got := Insert.String(); got != "Insert" {
		t.Errorf("Insert.String() = %q", got)
	}
	if got := Op(7).String(); got != "Op(7)" {
		t.Errorf("Op(7).String() = %q", got)
	}
	if got := (Edit{Substitute, 1, 1, 'e', 'o'}).String(); got != `~'e'→'o'@1` {
		t.Errorf("Edit.String() = %q", got)
	}
}

func randomString(rng *rand.Rand, alphabet string, n int) string {
	var b strings.Builder
	for range n {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}
