// core/fasta/records.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one named input sequence. Seq is the raw text with line breaks
// and surrounding whitespace removed; it is not sanitized.
type Record struct {
	ID  string
	Seq string
}

// ReadCtx parses r and calls emit once per record, in file order.
//
// Input with '>' headers is treated as FASTA. Sequence text appearing before
// the first header (or in a file with no header at all) forms a record
// called name. A header with no sequence still produces a record.
// Cancellation is checked between lines.
func ReadCtx(ctx context.Context, r io.Reader, name string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // single-line genomes
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		open    bool
		pending []byte
	)
	flush := func() error {
		if !open {
			return nil
		}
		open = false
		rec := Record{ID: id, Seq: string(pending)}
		pending = pending[:0]
		return emit(rec)
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			if id == "" {
				id = name
			}
			open = true
			continue
		}
		if !open {
			id, open = name, true
		}
		pending = append(pending, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadPathCtx opens path (gzip and "-" supported) and streams its records.
func ReadPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ReadCtx(ctx, rc, NameFor(path), emit)
}

// ReadAll collects every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ReadPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
