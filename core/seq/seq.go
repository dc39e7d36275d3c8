// core/seq/seq.go
package seq

import (
	"strconv"
	"strings"
)

// tmSwitchLen is the length at which Tm switches from the Wallace rule to the
// GC-corrected formula. The step between 13 and 14 bases is intentional.
const tmSwitchLen = 14

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// Sanitize uppercases s and keeps only A, C, G and T, preserving order.
// It never fails; anything unrecognized is dropped.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case 'A', 'C', 'G', 'T':
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Counts holds per-base counts of a sanitized sequence.
type Counts struct {
	A, C, G, T int
}

// GC returns G+C.
func (c Counts) GC() int { return c.G + c.C }

// AT returns A+T.
func (c Counts) AT() int { return c.A + c.T }

// Total returns the number of counted bases.
func (c Counts) Total() int { return c.A + c.C + c.G + c.T }

// Count tallies bases of an already sanitized sequence.
func Count(s string) Counts {
	var c Counts
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			c.A++
		case 'C':
			c.C++
		case 'G':
			c.G++
		case 'T':
			c.T++
		}
	}
	return c
}

// GC returns the GC percentage of s rounded to 2 decimals (0 for empty input).
func GC(s string) float64 {
	return GCOf(Count(Sanitize(s)))
}

// GCOf is GC computed from precomputed counts.
func GCOf(c Counts) float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}
	return Round2(float64(c.GC()) / float64(n) * 100)
}

// Tm returns an empirical melting temperature in °C rounded to 2 decimals.
//
//	len < 14:  2·(A+T) + 4·(G+C)
//	len ≥ 14:  64.9 + 41·(G+C−16.4)/(A+T+G+C)
func Tm(s string) float64 {
	return TmOf(Count(Sanitize(s)))
}

// TmOf is Tm computed from precomputed counts.
func TmOf(c Counts) float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}
	var tm float64
	if n < tmSwitchLen {
		tm = float64(2*c.AT() + 4*c.GC())
	} else {
		tm = 64.9 + 41*(float64(c.GC())-16.4)/float64(c.Total())
	}
	return Round2(tm)
}

// RevComp returns the reverse complement of s. Bytes other than ACGT are
// passed through unchanged.
func RevComp(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return string(out)
}

// Round2 rounds x to 2 decimal places. The exact binary value is rounded,
// so 3.125 becomes 3.12 and 88.065 (stored just below) becomes 88.06.
func Round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}
