// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// StreamTextWithRenderer writes rows as TSV as they arrive. When prettyMode
// is set, render(row) is printed after each line.
func StreamTextWithRenderer(w io.Writer, in <-chan Row, header, prettyMode bool, render func(Row) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
		if prettyMode && render != nil {
			if _, err := io.WriteString(w, render(r)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteText is StreamTextWithRenderer over a slice, without pretty blocks.
func WriteText(w io.Writer, rows []Row, header bool) error {
	ch := make(chan Row, len(rows))
	for _, r := range rows {
		ch <- r
	}
	close(ch)
	return StreamTextWithRenderer(w, ch, header, false, nil)
}
