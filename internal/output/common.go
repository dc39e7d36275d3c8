package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "record\trank\tf_seq\tf_pos\tf_len\tf_tm\tf_gc\tr_seq\tr_pos\tr_len\tr_tm\tr_gc\tamp_len\tscore\twarnings"

// WarningSep joins forward then reverse warning tags in the warnings column.
const WarningSep = ";"

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)
