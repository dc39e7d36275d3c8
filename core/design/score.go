package design

import (
	"math"

	"qpcr/core/candidate"
	"qpcr/core/structure"
)

// Score weights.
const (
	tmWeight       = 1.5
	warningPenalty = 20.0
	gcRich3Penalty = 8.0
	ampLenDivisor  = 5.0
)

// Score returns the composite pair score; lower is better. reverseOligo is
// the reverse primer as synthesized (reverse complement of the template
// window r).
func Score(f, r candidate.Candidate, reverseOligo string, ampLen int, p Params) float64 {
	fRich := structure.GCRich3Prime(f.Seq, structure.DefaultGCThreshold)
	rRich := structure.GCRich3Prime(reverseOligo, structure.DefaultGCThreshold)
	return score(f, r, fRich, rRich, ampLen, p)
}

// score adds the terms in a fixed order so equal inputs give bit-equal sums.
func score(f, r candidate.Candidate, fRich3, rRich3 bool, ampLen int, p Params) float64 {
	s := 0.0
	s += math.Abs(f.GC-50) + math.Abs(r.GC-50)
	s += tmWeight * (math.Abs(f.Tm-p.TmTarget) + math.Abs(r.Tm-p.TmTarget))
	s += float64(len(f.Warnings)+len(r.Warnings)) * warningPenalty
	if fRich3 {
		s += gcRich3Penalty
	}
	if rRich3 {
		s += gcRich3Penalty
	}
	mid := float64(p.AmpMin+p.AmpMax) / 2.0
	s += math.Abs(float64(ampLen)-mid) / ampLenDivisor
	return s
}
