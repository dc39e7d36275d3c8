// internal/writers/pair.go
package writers

import (
	"io"

	"qpcr/internal/output"
	"qpcr/internal/pretty"
)

func drainRows(ch <-chan output.Row) []output.Row {
	list := make([]output.Row, 0, 64)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// JSON array across all records
	RegisterPair(output.FormatJSON, func(w io.Writer, args PairArgs) error {
		return output.WriteJSON(w, drainRows(args.In))
	})

	RegisterPair(output.FormatJSONL, func(w io.Writer, args PairArgs) error {
		pipe, done := StartPairJSONLWriter(w, 64)
		for r := range args.In {
			pipe <- r
		}
		close(pipe)
		return <-done
	})

	// TSV streaming, optional pretty block per row
	RegisterPair(output.FormatText, func(w io.Writer, args PairArgs) error {
		render := func(r output.Row) string {
			return pretty.RenderPairWithOptions(r.Pair, args.Opt)
		}
		return output.StreamTextWithRenderer(w, args.In, args.Header, args.Pretty, render)
	})
}

// StartPairWriter spins up a writer goroutine for ranked rows. Close the
// returned channel, then read the error channel once.
//
// Rows sent after a write failure are drained and dropped so producers
// never block.
func StartPairWriter(out io.Writer, format string, header, prettyMode bool, bufSize int) (chan<- output.Row, <-chan error) {
	return StartPairWriterWithPrettyOptions(out, format, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartPairWriterWithPrettyOptions allows customizing the pretty renderer.
func StartPairWriterWithPrettyOptions(out io.Writer, format string, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := WritePair(format, out, PairArgs{Header: header, Pretty: prettyMode, Opt: popt, In: in})
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
