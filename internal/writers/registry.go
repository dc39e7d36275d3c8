// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"qpcr/internal/output"
	"qpcr/internal/pretty"
)

// PairArgs is what every pair writer receives. In is closed by the producer.
type PairArgs struct {
	Header bool
	Pretty bool
	Opt    pretty.Options
	In     <-chan output.Row
}

// PairWriters maps an output format to its handler.
// Register in init() blocks; last registration wins.
var PairWriters = map[string]func(w io.Writer, args PairArgs) error{}

func RegisterPair(format string, fn func(io.Writer, PairArgs) error) { PairWriters[format] = fn }

// WritePair dispatches to the handler registered for format.
func WritePair(format string, w io.Writer, args PairArgs) error {
	fn, ok := PairWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, args)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(PairWriters))
	for k := range PairWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsBrokenPipe reports whether err means the consumer stopped reading,
// as when output is piped into head or a client hangs up a socket.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range []error{syscall.EPIPE, syscall.ECONNRESET, io.ErrClosedPipe} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
