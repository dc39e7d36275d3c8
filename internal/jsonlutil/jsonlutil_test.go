package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStart_OneLinePerValue(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[int](&buf, 2, func(enc *json.Encoder, v int) error {
		return enc.Encode(map[string]int{"v": v})
	}, nil)
	for i := 1; i <= 5; i++ {
		in <- i
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("done: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 || lines[4] != `{"v":5}` {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStart_BrokenPipeSuppressed(t *testing.T) {
	pipeErr := errors.New("closed")
	in, done := Start[int](failWriter{pipeErr}, 1, func(enc *json.Encoder, v int) error {
		return enc.Encode(v)
	}, func(err error) bool { return errors.Is(err, pipeErr) })
	in <- 1
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe should be swallowed, got %v", err)
	}
}

func TestStart_EncodeErrorDrainsInput(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[int](&bytes.Buffer{}, 1, func(*json.Encoder, int) error { return boom }, nil)
	for i := 0; i < 100; i++ {
		in <- i // must not block after the first failure
	}
	close(in)
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}
