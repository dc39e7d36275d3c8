package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

// allowed lists, per package prefix, the module-local prefixes it may import.
var allowed = map[string][]string{
	"qpcr/core/":            {"qpcr/core/"},
	"qpcr/pkg/":             {},
	"qpcr/internal/server":  {"qpcr/core/", "qpcr/pkg/", "qpcr/internal/jsonutil", "qpcr/internal/metrics", "qpcr/internal/output", "qpcr/internal/runutil"},
	"qpcr/internal/output":  {"qpcr/core/", "qpcr/pkg/", "qpcr/internal/jsonutil"},
	"qpcr/internal/writers": {"qpcr/core/", "qpcr/pkg/", "qpcr/internal/jsonutil", "qpcr/internal/jsonlutil", "qpcr/internal/output", "qpcr/internal/pretty"},
	"qpcr/internal/pretty":  {"qpcr/core/"},
	"qpcr/internal/metrics": {"qpcr/core/"},
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		for prefix, ok := range allowed {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if strings.HasPrefix(dep, "qpcr/") && !hasAnyPrefix(dep, ok) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
