// core/candidate/candidate.go
package candidate

import (
	"math"

	"qpcr/core/seq"
	"qpcr/core/structure"
)

// Candidate is one window of the template that passed the GC and Tm filters.
// Warnings never exclude a candidate; they are only scored later.
type Candidate struct {
	Pos      int // 0-based start on the template
	Seq      string
	Len      int
	Tm       float64
	GC       float64
	Warnings []structure.Warning
}

// End returns the exclusive end offset on the template.
func (c Candidate) End() int { return c.Pos + c.Len }

// Window bounds the candidates Enumerate keeps.
type Window struct {
	MinLen, MaxLen int
	GCMin, GCMax   float64
	TmTarget       float64
	TmTol          float64
}

// Accepts reports whether gc and tm fall inside the window.
func (w Window) Accepts(gc, tm float64) bool {
	if gc < w.GCMin || gc > w.GCMax {
		return false
	}
	return math.Abs(tm-w.TmTarget) <= w.TmTol
}

// Enumerate returns every (length, offset) window of s that satisfies w,
// ordered by length then offset. s is sanitized first. Lengths longer than
// the sequence are skipped; nothing is deduplicated.
func Enumerate(s string, w Window) []Candidate {
	s = seq.Sanitize(s)
	n := len(s)
	var out []Candidate
	for L := w.MinLen; L <= w.MaxLen; L++ {
		if L <= 0 || L > n {
			continue
		}
		for i := 0; i+L <= n; i++ {
			if c, ok := evaluate(s, i, L, w); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func evaluate(s string, pos, L int, w Window) (Candidate, bool) {
	sub := s[pos : pos+L]
	counts := seq.Count(sub)
	gc, tm := seq.GCOf(counts), seq.TmOf(counts)
	if !w.Accepts(gc, tm) {
		return Candidate{}, false
	}
	return Candidate{
		Pos:      pos,
		Seq:      sub,
		Len:      L,
		Tm:       tm,
		GC:       gc,
		Warnings: structure.CheckClean(sub),
	}, true
}

// PruneKey ranks candidates before pairing: distance from 50% GC plus
// distance from the Tm target. Smaller is kept first.
func PruneKey(c Candidate, tmTarget float64) float64 {
	return math.Abs(c.GC-50) + math.Abs(c.Tm-tmTarget)
}
