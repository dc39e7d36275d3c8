package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const multi = `>seq1 first record
ACGT
acgt

>seq2
NNnn
>empty
`

func writeFile(t *testing.T, name, data string, gz bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var w io.Writer = fh
	var gw *gzip.Writer
	if gz {
		gw = gzip.NewWriter(fh)
		w = gw
	}
	if _, err := io.WriteString(w, data); err != nil {
		t.Fatalf("write: %v", err)
	}
	if gw != nil {
		if err := gw.Close(); err != nil {
			t.Fatalf("close gzip: %v", err)
		}
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestReadAll_FASTA(t *testing.T) {
	recs, err := ReadAll(context.Background(), writeFile(t, "x.fa", multi, false))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := []Record{{"seq1", "ACGTacgt"}, {"seq2", "NNnn"}, {"empty", ""}}
	if len(recs) != len(want) {
		t.Fatalf("got %d records: %+v", len(recs), recs)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, recs[i], want[i])
		}
	}
}

func TestReadAll_Gzip(t *testing.T) {
	// no .gz suffix: detected by magic bytes
	recs, err := ReadAll(context.Background(), writeFile(t, "x.fa", multi, true))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 3 || recs[0].ID != "seq1" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestReadAll_RawText(t *testing.T) {
	path := writeFile(t, "gapdh.txt.gz", "ATGGGG aaac\n\nTTTT\n", true)
	recs, err := ReadAll(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "gapdh" || recs[0].Seq != "ATGGGG aaacTTTT" {
		t.Fatalf("raw text parse: %+v", recs)
	}
}

func TestReadCtx_LeadingTextThenHeaders(t *testing.T) {
	var got []Record
	err := ReadCtx(context.Background(), strings.NewReader("AC\n>h\nGT\n"), "lead", func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != (Record{"lead", "AC"}) || got[1] != (Record{"h", "GT"}) {
		t.Fatalf("got %+v", got)
	}
}

func TestReadCtx_EmptyInput(t *testing.T) {
	n := 0
	if err := ReadCtx(context.Background(), strings.NewReader("\n\n"), "x", func(Record) error { n++; return nil }); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected no records, got %d", n)
	}
}

func TestReadCtx_EmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := ReadCtx(context.Background(), strings.NewReader(multi), "x", func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestReadPathCtx_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := ReadPathCtx(ctx, writeFile(t, "x.fa", multi, false), func(Record) error { n++; return nil })
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestReadPathCtx_Stdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() {
		_, _ = io.WriteString(w, "acgtacgt\n")
		_ = w.Close()
	}()
	recs, err := ReadAll(context.Background(), StdinPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != "stdin" {
		t.Fatalf("stdin parse: %+v", recs)
	}
}

func TestOpen_Missing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNameFor(t *testing.T) {
	cases := map[string]string{
		"-":                  "stdin",
		"/data/gapdh.txt.gz": "gapdh",
		"actb.fa":            "actb",
		".hidden":            ".hidden",
		"noext":              "noext",
	}
	for in, want := range cases {
		if got := NameFor(in); got != want {
			t.Errorf("NameFor(%q)=%q want %q", in, got, want)
		}
	}
}
