// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"qpcr/core/design"
)

// ResolveThreads maps the --threads value to a worker count:
// 0 means one per CPU, negative values mean 1.
func ResolveThreads(n int) int {
	switch {
	case n == 0:
		return runtime.NumCPU()
	case n < 0:
		return 1
	}
	return n
}

// ParamWarnings lists parameter combinations that are legal but unlikely
// to be what the user meant.
func ParamWarnings(p design.Params) []string {
	var warns []string
	if p.AmpMax < 2*p.PrimerMin {
		warns = append(warns, fmt.Sprintf(
			"warning: --amp-max %d is shorter than two primers of --primer-min %d; no pair can fit without overlap",
			p.AmpMax, p.PrimerMin))
	}
	if p.MaxCandidatesPerSide == 0 {
		warns = append(warns, fmt.Sprintf(
			"warning: --max-candidates 0 uses the default of %d", design.DefaultMaxCandidatesPerSide))
	}
	if p.TmTol == 0 {
		warns = append(warns, "warning: --tm-tol 0 only accepts primers whose Tm equals --tm-target exactly")
	}
	return warns
}

// TruncationWarning describes an input clipped to design.MaxSequenceLen.
// rawLen is the sanitized length before clipping.
func TruncationWarning(record string, rawLen int) string {
	return fmt.Sprintf("warning: %s: sequence of %d bp truncated to the first %d bp",
		record, rawLen, design.MaxSequenceLen)
}
