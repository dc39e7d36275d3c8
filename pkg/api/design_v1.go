// pkg/api/design_v1.go
package api

// PrimerV1 describes one oligo of a pair. Pos is 1-based on the sanitized
// template. For the reverse primer Seq is the oligo as synthesized while
// Pos, Len, Tm and GC describe its binding window on the template.
type PrimerV1 struct {
	Seq      string   `json:"seq"`
	Pos      int      `json:"pos"`
	Len      int      `json:"len"`
	Tm       float64  `json:"tm"`
	GC       float64  `json:"gc"`
	Warnings []string `json:"warnings,omitempty"`
}

// PairV1 is the stable JSON/JSONL schema for a ranked primer pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PairV1 struct {
	Record  string   `json:"record,omitempty"`
	Rank    int      `json:"rank"`
	Forward PrimerV1 `json:"forward"`
	Reverse PrimerV1 `json:"reverse"`
	AmpLen  int      `json:"amp_len"`
	Score   float64  `json:"score"`
}

// DesignRequestV1 is the body of POST /v1/design. Nil fields take the
// designer's defaults.
type DesignRequestV1 struct {
	Sequence             string   `json:"sequence"`
	PrimerMin            *int     `json:"primer_min,omitempty"`
	PrimerMax            *int     `json:"primer_max,omitempty"`
	GCMin                *float64 `json:"gc_min,omitempty"`
	GCMax                *float64 `json:"gc_max,omitempty"`
	TmTarget             *float64 `json:"tm_target,omitempty"`
	TmTol                *float64 `json:"tm_tol,omitempty"`
	AmpMin               *int     `json:"amp_min,omitempty"`
	AmpMax               *int     `json:"amp_max,omitempty"`
	TopN                 *int     `json:"top_n,omitempty"`
	MaxCandidatesPerSide *int     `json:"max_candidates_per_side,omitempty"`
}

// DesignResponseV1 is the body of a successful POST /v1/design.
type DesignResponseV1 struct {
	RequestID      string   `json:"request_id"`
	SequenceLength int      `json:"sequence_length"`
	Truncated      bool     `json:"truncated"`
	Pairs          []PairV1 `json:"pairs"`
}

// ErrorV1 is returned with every non-2xx status.
type ErrorV1 struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
