// core/design/params.go
package design

import (
	"errors"
	"fmt"

	"qpcr/core/candidate"
)

const (
	// MaxSequenceLen caps the analysed template; longer input is truncated.
	MaxSequenceLen = 20000

	// DefaultMaxCandidatesPerSide bounds each role's candidate set before pairing.
	DefaultMaxCandidatesPerSide = 8000
)

// Ranges accepted from users by ValidateBounded. Design runs in time
// proportional to primer-length span × amplicon span × candidates kept.
const (
	MinPrimerLen = 10
	MaxPrimerLen = 40
	MinAmpLen    = 50
	MaxAmpLen    = 500
	MaxTopN      = 100
)

// Params is the immutable configuration of one Design call.
type Params struct {
	PrimerMin, PrimerMax int     // oligo length bounds (nt)
	GCMin, GCMax         float64 // percent
	TmTarget             float64 // °C
	TmTol                float64 // °C
	AmpMin, AmpMax       int     // amplicon length bounds (bp)
	TopN                 int

	// MaxCandidatesPerSide <= 0 means DefaultMaxCandidatesPerSide.
	MaxCandidatesPerSide int

	// Workers > 1 enumerates both roles concurrently and splits pairing
	// across that many goroutines. Results do not depend on it.
	Workers int
}

// DefaultParams mirrors the defaults of the interactive designer.
func DefaultParams() Params {
	return Params{
		PrimerMin:            18,
		PrimerMax:            22,
		GCMin:                40,
		GCMax:                60,
		TmTarget:             60,
		TmTol:                6,
		AmpMin:               70,
		AmpMax:               200,
		TopN:                 10,
		MaxCandidatesPerSide: DefaultMaxCandidatesPerSide,
		Workers:              1,
	}
}

// Window returns the candidate filter shared by the forward and reverse roles.
func (p Params) Window() candidate.Window {
	return candidate.Window{
		MinLen:   p.PrimerMin,
		MaxLen:   p.PrimerMax,
		GCMin:    p.GCMin,
		GCMax:    p.GCMax,
		TmTarget: p.TmTarget,
		TmTol:    p.TmTol,
	}
}

func (p Params) candidateCap() int {
	if p.MaxCandidatesPerSide <= 0 {
		return DefaultMaxCandidatesPerSide
	}
	return p.MaxCandidatesPerSide
}

// Validate checks a user-supplied parameter set. Design itself never calls
// it: malformed parameters there simply produce no pairs.
func (p Params) Validate() error {
	switch {
	case p.PrimerMin < 1:
		return errors.New("primer min must be ≥ 1")
	case p.PrimerMin > p.PrimerMax:
		return fmt.Errorf("primer min (%d) exceeds primer max (%d)", p.PrimerMin, p.PrimerMax)
	case p.GCMin < 0 || p.GCMax > 100:
		return fmt.Errorf("GC bounds must lie in [0,100], got [%g,%g]", p.GCMin, p.GCMax)
	case p.GCMin > p.GCMax:
		return fmt.Errorf("GC min (%g) exceeds GC max (%g)", p.GCMin, p.GCMax)
	case p.TmTol < 0:
		return fmt.Errorf("Tm tolerance must be ≥ 0, got %g", p.TmTol)
	case p.AmpMin < 1:
		return errors.New("amplicon min must be ≥ 1")
	case p.AmpMin > p.AmpMax:
		return fmt.Errorf("amplicon min (%d) exceeds amplicon max (%d)", p.AmpMin, p.AmpMax)
	case p.TopN < 1:
		return errors.New("top N must be ≥ 1")
	case p.MaxCandidatesPerSide < 0:
		return errors.New("max candidates per side must be ≥ 0")
	case p.Workers < 0:
		return errors.New("workers must be ≥ 0")
	}
	return nil
}

// ValidateBounded is Validate plus the ranges a user-facing caller accepts:
// primers of MinPrimerLen..MaxPrimerLen nt, amplicons of MinAmpLen..MaxAmpLen
// bp, at most MaxTopN pairs and at most DefaultMaxCandidatesPerSide
// candidates per side.
func (p Params) ValidateBounded() error {
	if err := p.Validate(); err != nil {
		return err
	}
	switch {
	case p.PrimerMin < MinPrimerLen || p.PrimerMax > MaxPrimerLen:
		return fmt.Errorf("primer lengths must lie in [%d,%d], got [%d,%d]", MinPrimerLen, MaxPrimerLen, p.PrimerMin, p.PrimerMax)
	case p.AmpMin < MinAmpLen || p.AmpMax > MaxAmpLen:
		return fmt.Errorf("amplicon lengths must lie in [%d,%d], got [%d,%d]", MinAmpLen, MaxAmpLen, p.AmpMin, p.AmpMax)
	case p.TopN > MaxTopN:
		return fmt.Errorf("top N must be ≤ %d, got %d", MaxTopN, p.TopN)
	case p.MaxCandidatesPerSide > DefaultMaxCandidatesPerSide:
		return fmt.Errorf("max candidates per side must be ≤ %d, got %d", DefaultMaxCandidatesPerSide, p.MaxCandidatesPerSide)
	}
	return nil
}
