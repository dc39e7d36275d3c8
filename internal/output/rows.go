// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"qpcr/core/design"
	"qpcr/core/seq"
	"qpcr/core/structure"
)

// Row is one ranked pair of one input record.
type Row struct {
	Record string
	Rank   int // 1-based
	Pair   design.Pair
}

// RowsFor numbers pairs (already best-first) for record.
func RowsFor(record string, pairs []design.Pair) []Row {
	out := make([]Row, len(pairs))
	for i, p := range pairs {
		out[i] = Row{Record: record, Rank: i + 1, Pair: p}
	}
	return out
}

func f2(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }

// Warnings returns the forward tags followed by the reverse tags.
func Warnings(p design.Pair) []string {
	ws := structure.Strings(p.Forward.Warnings)
	return append(ws, structure.Strings(p.Reverse.Warnings)...)
}

// FormatRowTSV returns one TSV line (no trailing newline). Positions are
// 1-based and the score is rounded to two decimals.
func FormatRowTSV(r Row) string {
	f, rv := r.Pair.Forward, r.Pair.Reverse
	return fmt.Sprintf("%s\t%d\t%s\t%d\t%d\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%d\t%s\t%s",
		r.Record, r.Rank,
		f.Seq, f.Pos+1, f.Len, f2(f.Tm), f2(f.GC),
		rv.Seq, rv.Pos+1, rv.Len, f2(rv.Tm), f2(rv.GC),
		r.Pair.AmpLen, f2(seq.Round2(r.Pair.Score)),
		strings.Join(Warnings(r.Pair), WarningSep),
	)
}
