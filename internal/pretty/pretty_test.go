package pretty

import (
	"strings"
	"testing"

	"qpcr/core/candidate"
	"qpcr/core/design"
)

func pair(fwd, rev string, fPos, rPos, amp int) design.Pair {
	return design.Pair{
		Forward: candidate.Candidate{Seq: fwd, Pos: fPos, Len: len(fwd)},
		Reverse: candidate.Candidate{Seq: rev, Pos: rPos, Len: len(rev)},
		AmpLen:  amp,
	}
}

func TestRenderPair_Golden(t *testing.T) {
	got := RenderPair(pair("AAA", "TTG", 0, 19, 22))
	dots := strings.Repeat(".", 16)
	pad := strings.Repeat(" ", 16)
	want := "# 5'-AAA-3'\n" +
		"#    |||-->\n" +
		"# 5'-AAA" + dots + "-3' # (+) 1\n" +
		"# 3'-" + dots + "GTT-5' # (-) 22\n" +
		"# " + pad + "<--|||\n" +
		"# " + pad + "3'-GTT-5'\n" +
		"#\n"
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderPair_GapIsCapped(t *testing.T) {
	fwd := strings.Repeat("A", 20)
	rev := strings.Repeat("C", 20)
	got := RenderPairWithOptions(pair(fwd, rev, 0, 380, 400), Options{MaxGap: 30})
	lines := strings.Split(got, "\n")
	if n := strings.Count(lines[2], "."); n != 30 {
		t.Fatalf("plus line has %d dots, want 30:\n%s", n, got)
	}
	if strings.Index(lines[2], " # (") != strings.Index(lines[3], " # (") {
		t.Fatalf("strand lines differ in width:\n%s", got)
	}
}

func TestRenderPair_OverlappingPrimers(t *testing.T) {
	// amplicon shorter than both primers together: interior clamps to zero
	got := RenderPair(pair("ACGTACGT", "TTTTCCCC", 0, 4, 12))
	if !strings.Contains(got, "3'-CCCCTTTT-5'") {
		t.Fatalf("reverse primer not drawn 3'->5':\n%s", got)
	}
	if !strings.Contains(got, "5'-ACGTACGT") {
		t.Fatalf("forward primer missing:\n%s", got)
	}
}

func TestRenderPair_MissingPrimer(t *testing.T) {
	if got := RenderPair(design.Pair{}); !strings.Contains(got, "pretty not available") {
		t.Fatalf("got %q", got)
	}
}

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.DotGlyph != "." || d.BarGlyph != "|" || d.MaxGap != 95 {
		t.Fatalf("DefaultOptions visual defaults changed: %+v", d)
	}
}
