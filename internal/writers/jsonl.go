// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"qpcr/internal/jsonlutil"
	"qpcr/internal/output"
)

// StartPairJSONLWriter streams each row as one JSON line (v1).
func StartPairJSONLWriter(out io.Writer, bufSize int) (chan<- output.Row, <-chan error) {
	return jsonlutil.Start[output.Row](out, bufSize,
		func(enc *json.Encoder, r output.Row) error {
			return enc.Encode(output.ToAPIPair(r))
		},
		IsBrokenPipe,
	)
}
