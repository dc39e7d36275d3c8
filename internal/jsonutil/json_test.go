package jsonutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type doc struct {
	A int    `json:"a"`
	B string `json:"b,omitempty"`
}

func TestEncodePretty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, doc{A: 1, B: "x"}); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": \"x\"\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestDecodeStrict(t *testing.T) {
	var d doc
	if err := DecodeStrict(strings.NewReader(` {"a": 3} `), &d); err != nil || d.A != 3 {
		t.Fatalf("got %+v err %v", d, err)
	}
	bad := []string{
		``,
		`{"a": 1, "c": 2}`,
		`{"a": 1} {"a": 2}`,
		`{"a": 1} x`,
		`{"a": "one"}`,
	}
	for _, in := range bad {
		if err := DecodeStrict(strings.NewReader(in), &d); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestWriteResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponse(rec, http.StatusTeapot, doc{A: 7})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentType {
		t.Fatalf("content type %q", ct)
	}
	if got := rec.Body.String(); got != "{\"a\":7}\n" {
		t.Fatalf("body %q", got)
	}
}
