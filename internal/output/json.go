// internal/output/json.go
package output

import (
	"io"

	"qpcr/core/candidate"
	"qpcr/core/seq"
	"qpcr/core/structure"
	"qpcr/internal/jsonutil"
	"qpcr/pkg/api"
)

func toAPIPrimer(c candidate.Candidate) api.PrimerV1 {
	return api.PrimerV1{
		Seq:      c.Seq,
		Pos:      c.Pos + 1,
		Len:      c.Len,
		Tm:       c.Tm,
		GC:       c.GC,
		Warnings: structure.Strings(c.Warnings),
	}
}

// ToAPIPair converts a ranked pair to the stable wire schema (v1).
func ToAPIPair(r Row) api.PairV1 {
	return api.PairV1{
		Record:  r.Record,
		Rank:    r.Rank,
		Forward: toAPIPrimer(r.Pair.Forward),
		Reverse: toAPIPrimer(r.Pair.Reverse),
		AmpLen:  r.Pair.AmpLen,
		Score:   seq.Round2(r.Pair.Score),
	}
}

// ToAPIPairs converts rows in order. The result is never nil.
func ToAPIPairs(rows []Row) []api.PairV1 {
	out := make([]api.PairV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIPair(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 pairs (pretty-indented).
func WriteJSON(w io.Writer, rows []Row) error {
	return jsonutil.EncodePretty(w, ToAPIPairs(rows))
}
