package runutil

import (
	"runtime"
	"strings"
	"sync"
	"testing"

	"qpcr/core/design"
)

func TestResolveThreads(t *testing.T) {
	if got := ResolveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 → NumCPU, got %d", got)
	}
	if got := ResolveThreads(-3); got != 1 {
		t.Fatalf("negative → 1, got %d", got)
	}
	if got := ResolveThreads(6); got != 6 {
		t.Fatalf("want 6, got %d", got)
	}
}

func TestParamWarnings(t *testing.T) {
	if w := ParamWarnings(design.DefaultParams()); len(w) != 0 {
		t.Fatalf("defaults should not warn: %v", w)
	}
	p := design.DefaultParams()
	p.AmpMax = 30
	p.MaxCandidatesPerSide = 0
	p.TmTol = 0
	w := ParamWarnings(p)
	if len(w) != 3 || !strings.Contains(w[0], "--amp-max 30") || !strings.Contains(w[1], "8000") {
		t.Fatalf("unexpected warnings: %v", w)
	}
}

func TestTruncationWarning(t *testing.T) {
	got := TruncationWarning("chr1", 25000)
	if !strings.Contains(got, "chr1") || !strings.Contains(got, "25000") || !strings.Contains(got, "20000") {
		t.Fatalf("got %q", got)
	}
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 { // a is now most recent
		t.Fatalf("get a: %v %v", v, ok)
	}
	c.Add("c", 3) // evicts b
	if _, ok := c.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if c.Len() != 2 {
		t.Fatalf("len=%d", c.Len())
	}
	c.Add("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Fatalf("update lost: %d", v)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.Add(i%32, g)
				c.Get(i % 7)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Fatalf("cap exceeded: %d", c.Len())
	}
}
