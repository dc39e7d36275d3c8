package structure

import (
	"reflect"
	"testing"
)

func TestSelfComplementary(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"palindromic repeat", "AAAAATTTTT", true},
		{"GC palindrome", "GGGGGCCCCC", true},
		{"lowercase palindrome", "aaaaattttt", true},
		{"homopolymer has no complement", "AAAAAAAAAA", false},
		{"shorter than minMatch+1", "ACGT", false},
		{"empty", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SelfComplementary(c.in, DefaultMinMatch); got != c.want {
				t.Fatalf("SelfComplementary(%q)=%v want %v", c.in, got, c.want)
			}
		})
	}
}

func TestSelfComplementary_RunResetsOnMismatch(t *testing.T) {
	// AAAATTTT: best run at any shift is 3, so minMatch=4 misses and 3 hits.
	if SelfComplementary("AAAATTTT", 4) {
		t.Fatalf("run of 3 should not satisfy minMatch=4")
	}
	if !SelfComplementary("AAAATTTT", 3) {
		t.Fatalf("run of 3 should satisfy minMatch=3")
	}
}

func TestGCRich3Prime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"AAAAAGGGGC", true},
		{"AAAAAGGCAT", false},
		{"GGGGGAATTA", false},
		{"AAAAACGAGC", true},
		{"GGG", false},
		{"GGGG", true},
		{"", false},
	}
	for _, c := range cases {
		if got := GCRich3Prime(c.in, DefaultGCThreshold); got != c.want {
			t.Fatalf("GCRich3Prime(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestHairpin(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"stem loop stem", "GGGGAAAACCCC", true},
		{"loop of 8", "TTGGGGAAAAAAAACCCCTT", true},
		{"loop of 9 is too long", "GGGGAAAAAAAAACCCC", false},
		{"loop of 2 is too short", "AAGGGGAACCCCAA", false},
		{"homopolymer", "AAAAAAAAAAAA", false},
		{"too short", "GGGGACCCC", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Hairpin(c.in, DefaultMinStem, DefaultLoopMin, DefaultLoopMax); got != c.want {
				t.Fatalf("Hairpin(%q)=%v want %v", c.in, got, c.want)
			}
		})
	}
}

func TestCheck_TagOrder(t *testing.T) {
	got := Check("GGGGAAAACCCC")
	want := []Warning{GCRich3End, HairpinStem}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Check=%v want %v", got, want)
	}
	if w := Check("AAAAAAAAAAAA"); len(w) != 0 {
		t.Fatalf("expected no warnings, got %v", w)
	}
}

func TestStrings(t *testing.T) {
	if got := Strings(nil); got != nil {
		t.Fatalf("want nil, got %v", got)
	}
	got := Strings([]Warning{GCRich3End, HairpinStem})
	if !reflect.DeepEqual(got, []string{"3'-GC-rich", "hairpin"}) {
		t.Fatalf("unexpected %v", got)
	}
}
