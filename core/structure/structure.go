// Package structure screens a single oligo for self-pairing risks:
// self-dimers, GC-rich 3' ends and hairpin stems.
//
// All checks are heuristics over the sanitized sequence; none of them model
// free energy. They only answer "could this fold or pair with itself".
package structure

import "qpcr/core/seq"

// Warning is a structural-risk tag attached to a candidate primer.
type Warning string

const (
	SelfDimer   Warning = "self-dimer"
	GCRich3End  Warning = "3'-GC-rich"
	HairpinStem Warning = "hairpin"
)

const (
	DefaultMinMatch    = 4
	DefaultGCThreshold = 4
	DefaultMinStem     = 4
	DefaultLoopMin     = 3
	DefaultLoopMax     = 8

	// threePrimeWindow is how many 3'-terminal bases GCRich3Prime inspects.
	threePrimeWindow = 5
)

// SelfComplementary reports whether s can align against its own reverse
// complement, at some non-zero shift, with a run of at least minMatch
// consecutive matching bases.
func SelfComplementary(s string, minMatch int) bool {
	return selfComplementary(seq.Sanitize(s), minMatch)
}

func selfComplementary(s string, minMatch int) bool {
	n := len(s)
	if n < minMatch+1 {
		return false
	}
	rc := seq.RevComp(s)
	for shift := 1; shift < n; shift++ {
		run := 0
		for i := 0; i < n-shift; i++ {
			if s[i] != rc[i+shift] {
				run = 0
				continue
			}
			run++
			if run >= minMatch {
				return true
			}
		}
	}
	return false
}

// GCRich3Prime reports whether the last five bases (or all of s when
// shorter) hold at least threshold G/C.
func GCRich3Prime(s string, threshold int) bool {
	return gcRich3Prime(seq.Sanitize(s), threshold)
}

func gcRich3Prime(s string, threshold int) bool {
	if len(s) == 0 {
		return false
	}
	tail := s
	if len(tail) > threePrimeWindow {
		tail = tail[len(tail)-threePrimeWindow:]
	}
	return seq.Count(tail).GC() >= threshold
}

// Hairpin reports whether some stem of minStem bases is followed, after a
// loop of loopMin..loopMax bases, by its own reverse complement. The first
// hit wins; no attempt is made to find the most stable fold.
func Hairpin(s string, minStem, loopMin, loopMax int) bool {
	return hairpin(seq.Sanitize(s), minStem, loopMin, loopMax)
}

func hairpin(s string, minStem, loopMin, loopMax int) bool {
	n := len(s)
	if n < 2*minStem+loopMin {
		return false
	}
	for i := 0; i < n-minStem-loopMin; i++ {
		stem1 := s[i : i+minStem]
		want := seq.RevComp(stem1)
		for loop := loopMin; loop <= loopMax; loop++ {
			start := i + minStem + loop
			if start >= n {
				continue
			}
			end := start + minStem
			if end > n {
				// a stem cut short by the 3' end cannot pair fully
				continue
			}
			if s[start:end] == want {
				return true
			}
		}
	}
	return false
}

// Check runs every screen with default thresholds and returns the triggered
// tags in a fixed order: self-dimer, 3'-GC-rich, hairpin.
func Check(s string) []Warning {
	return CheckClean(seq.Sanitize(s))
}

// CheckClean is Check for input already known to be sanitized.
func CheckClean(s string) []Warning {
	var out []Warning
	if selfComplementary(s, DefaultMinMatch) {
		out = append(out, SelfDimer)
	}
	if gcRich3Prime(s, DefaultGCThreshold) {
		out = append(out, GCRich3End)
	}
	if hairpin(s, DefaultMinStem, DefaultLoopMin, DefaultLoopMax) {
		out = append(out, HairpinStem)
	}
	return out
}

// Strings converts tags to plain strings (for wire formats).
func Strings(ws []Warning) []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = string(w)
	}
	return out
}
