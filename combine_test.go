package fuzzy

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod " +
	"tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis " +
	"nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis " +
	"aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat " +
	"nulla pariatur."

func loremPatterns(t *testing.T) []Searcher {
	t.Helper()
	return []Searcher{
		compileCI(t, "ut", 0),
		MustCompile("Duis", 1),
		MustCompile("dolor", 1),
	}
}

// checkOrdered verifies document order without overlaps.
func checkOrdered(t *testing.T, results []Result) {
	t.Helper()
	lastEnd := -1
	for i, r := range results {
		if r.Start() > r.End() {
			t.Fatalf("result %d %v: start after end", i, r)
		}
		if i > 0 && (r.Start() < lastEnd || r.End() <= lastEnd) {
			t.Fatalf("result %d %v overlaps or precedes end %d", i, r, lastEnd)
		}
		if r.Distance() > r.Pattern().MaxDistance() {
			t.Fatalf("result %d %v: distance above %d", i, r, r.Pattern().MaxDistance())
		}
		lastEnd = r.End()
	}
}

func hasResult(results []Result, pattern string, start, end, distance int) bool {
	return slices.ContainsFunc(results, func(r Result) bool {
		return r.Pattern().Text() == pattern && r.Start() == start && r.End() == end && r.Distance() == distance
	})
}

func TestCombineLorem(t *testing.T) {
	combinators := []struct {
		name     string
		combine  func(...Searcher) (*Group, error)
		lockStep bool
	}{
		{"Combine", Combine, true},
		{"CombineLockStep", CombineLockStep, true},
		{"CombineMerge", CombineMerge, false},
	}

	duis := strings.Index(lorem, "Duis")
	ut := strings.Index(lorem, "Ut")

	for _, tt := range combinators {
		t.Run(tt.name, func(t *testing.T) {
			g, err := tt.combine(loremPatterns(t)...)
			if err != nil {
				t.Fatal(err)
			}
			if g.LockStep() != tt.lockStep {
				t.Errorf("LockStep() = %v, want %v", g.LockStep(), tt.lockStep)
			}
			if g.Len() != 3 {
				t.Errorf("Len() = %d, want 3", g.Len())
			}

			results := slices.Collect(g.All(lorem))
			if len(results) == 0 {
				t.Fatal("no results")
			}
			checkOrdered(t, results)

			if first := results[0]; first.Pattern().Text() != "dolor" || first.Start() != 12 || first.Distance() != 0 {
				t.Errorf("first result = %v (%s), want dolor at 12", first, first.Pattern())
			}
			if !hasResult(results, "Duis", duis, duis+4, 0) {
				t.Errorf("results %v miss Duis at %d", results, duis)
			}
			if !hasResult(results, "ut", ut, ut+2, 0) {
				t.Errorf("results %v miss Ut at %d", results, ut)
			}
		})
	}
}

func TestCombineSinglePattern(t *testing.T) {
	p := MustCompile("aa", 1)
	want := spans(p.Matcher("aaaaa baab"))

	for _, combine := range []func(...Searcher) (*Group, error){CombineLockStep, CombineMerge} {
		g, err := combine(p)
		if err != nil {
			t.Fatal(err)
		}
		if got := spans(g.Matcher("aaaaa baab")); !slices.Equal(got, want) {
			t.Errorf("LockStep=%v: %v, want %v", g.LockStep(), got, want)
		}
	}
}

func TestLockStepPriority(t *testing.T) {
	first := MustCompile("abc", 0)
	second := MustCompile("abc", 0)

	g, err := CombineLockStep(second, first)
	if err != nil {
		t.Fatal(err)
	}
	f := g.Matcher("xabcx")
	if !f.Find() {
		t.Fatal("Find() = false")
	}
	if f.Pattern() != second {
		t.Error("later argument won a tie")
	}
	if f.Find() {
		t.Error("second Find() = true")
	}
}

func TestMergeOverlap(t *testing.T) {
	abc := MustCompile("abc", 0)
	bcd := MustCompile("bcd", 0)

	tests := []struct {
		text string
		want []span
	}{
		{"abcd", []span{{0, 3, 0}}},
		{"abcdbcd", []span{{0, 3, 0}, {4, 7, 0}}},
		{"bcdabc", []span{{0, 3, 0}, {3, 6, 0}}},
		{"xyz", nil},
	}

	g, err := CombineMerge(abc, bcd)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		if got := spans(g.Matcher(tt.text)); !slices.Equal(got, tt.want) {
			t.Errorf("%q: %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMergeTieBreak(t *testing.T) {
	short := MustCompile("ab", 0)
	long := MustCompile("abc", 0)

	g, err := CombineMerge(long, short)
	if err != nil {
		t.Fatal(err)
	}
	f := g.Matcher("abc")
	if !f.Find() {
		t.Fatal("Find() = false")
	}
	// Equal starts: the earlier end wins.
	if f.Pattern() != short || f.End() != 2 {
		t.Errorf("first = %s ending at %d, want ab ending at 2", f.Pattern(), f.End())
	}
	if f.Find() {
		t.Errorf("second Find() = true: %s", f.FoundText())
	}
}

// TestMergeRestartMultibyte restarts a member mid-text after multi-byte runes:
// its windows must still map back to the right byte offsets.
func TestMergeRestartMultibyte(t *testing.T) {
	grusse := MustCompile("grüße", 1)
	usse := MustCompile("üße", 1)
	text := "grüße üße grüse"

	// The first üße overlaps grüße and is restarted at byte 7.
	if got, want := spans(usse.MatcherRange(text, 7, len(text))), []span{{8, 13, 0}, {16, 20, 1}}; !slices.Equal(got, want) {
		t.Fatalf("üße from 7 = %v, want %v", got, want)
	}

	g, err := CombineMerge(grusse, usse)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for r := range g.All(text) {
		got = append(got, fmt.Sprintf("%s=%s%v", r.Pattern().Text(), r.Text(), span{r.Start(), r.End(), r.Distance()}))
	}
	want := []string{"grüße=grüße{0 7 0}", "üße=üße{8 13 0}", "grüße=grüse{14 20 1}"}
	if !slices.Equal(got, want) {
		t.Errorf("matches = %v, want %v", got, want)
	}
}

func TestNestedGroups(t *testing.T) {
	inner, err := Combine(MustCompile("alpha", 1), MustCompile("beta", 1))
	if err != nil {
		t.Fatal(err)
	}
	outer, err := Combine(inner, MustCompile("gamma", 1))
	if err != nil {
		t.Fatal(err)
	}
	if outer.LockStep() {
		t.Error("group with a nested group scans in lock-step")
	}

	text := "gama then alpa then bata"
	var got []string
	for r := range outer.All(text) {
		got = append(got, r.Pattern().Text()+"="+r.Text())
	}
	want := []string{"gamma=gama", "alpha=alpa", "beta=bata"}
	if !slices.Equal(got, want) {
		t.Errorf("matches = %v, want %v", got, want)
	}

	if s := outer.String(); s != "((alpha | beta) | gamma)" {
		t.Errorf("String() = %q", s)
	}
}

func TestGroupFinderReset(t *testing.T) {
	g, err := Combine(MustCompile("cat", 0), MustCompile("dog", 0))
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []Finder{g.Matcher("cat dog"), mustMerge(t, g).Matcher("cat dog")} {
		if got := len(spans(f)); got != 2 {
			t.Fatalf("matches = %d, want 2", got)
		}
		f.Reset("dog cat dog", 4, 11)
		want := []span{{4, 7, 0}, {8, 11, 0}}
		if got := spans(f); !slices.Equal(got, want) {
			t.Errorf("after Reset = %v, want %v", got, want)
		}
	}
}

func mustMerge(t *testing.T, g *Group) *Group {
	t.Helper()
	merged, err := CombineMerge(g.searchers...)
	if err != nil {
		t.Fatal(err)
	}
	return merged
}

func TestGroupFinderState(t *testing.T) {
	g, err := Combine(MustCompile("cat", 0), MustCompile("dog", 0))
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []Finder{g.Matcher("a cat"), mustMerge(t, g).Matcher("a cat")} {
		if _, ok := f.Match(); ok {
			t.Error("Match() before Find = true")
		}
		expectFinderPanic(t, func() { f.Start() })
		if !f.Find() {
			t.Fatal("Find() = false")
		}
		if r, ok := f.Match(); !ok || r.Text() != "cat" || f.FoundText() != "cat" {
			t.Errorf("Match() = %v, %v", r, ok)
		}
		if f.Find() {
			t.Fatal("second Find() = true")
		}
		expectFinderPanic(t, func() { f.Distance() })
	}
}

func expectFinderPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrNoMatch) {
			t.Errorf("panic = %v, want ErrNoMatch", err)
		}
	}()
	f()
}

func TestCombineErrors(t *testing.T) {
	p := MustCompile("abc", 1)
	g, err := Combine(p)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		combine func(...Searcher) (*Group, error)
		args    []Searcher
		want    error
		index   int
		message string
	}{
		{"empty", Combine, nil, ErrNoPatterns, -1, ""},
		{"empty merge", CombineMerge, nil, ErrNoPatterns, -1, ""},
		{"nil", Combine, []Searcher{p, nil}, ErrNilPattern, 1, "fuzzy: 2nd pattern is nil"},
		{"typed nil", Combine, []Searcher{p, p, (*Pattern)(nil)}, ErrNilPattern, 2, "fuzzy: 3rd pattern is nil"},
		{"nil group", CombineMerge, []Searcher{(*Group)(nil)}, ErrNilPattern, 0, "fuzzy: 1st pattern is nil"},
		{"group in lock-step", CombineLockStep, []Searcher{g}, ErrNotLockStep, 0,
			"fuzzy: 1st pattern: pattern does not support lock-step scanning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.combine(tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if tt.index < 0 {
				return
			}
			var ae *ArgumentError
			if !errors.As(err, &ae) {
				t.Fatalf("error type = %T, want *ArgumentError", err)
			}
			if ae.Index != tt.index {
				t.Errorf("Index = %d, want %d", ae.Index, tt.index)
			}
			if err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func BenchmarkCombine(b *testing.B) {
	text := strings.Repeat(lorem+" ", 20)
	patterns := []Searcher{
		MustCompile("ut", 0),
		MustCompile("Duis", 1),
		MustCompile("dolor", 1),
	}

	for _, bc := range []struct {
		name    string
		combine func(...Searcher) (*Group, error)
	}{
		{"LockStep", CombineLockStep},
		{"Merge", CombineMerge},
	} {
		g, err := bc.combine(patterns...)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bc.name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for b.Loop() {
				f := g.Matcher(text)
				for f.Find() {
				}
			}
		})
	}
}
