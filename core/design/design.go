// Package design searches a template for qPCR primer pairs and ranks them.
//
// The search runs in two phases. Candidate windows are enumerated once per
// role (forward, reverse) and pruned to a bounded set; the pruned sets are
// then crossed under the amplicon-length and orientation constraints and
// every surviving pair is scored. Nothing fails: empty input, impossible
// parameters or an unproductive template all yield an empty result.
package design

import (
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"qpcr/core/candidate"
	"qpcr/core/seq"
	"qpcr/core/structure"
)

// Pair is a ranked forward/reverse primer combination.
//
// Reverse.Seq is the oligo to order (reverse complement of the template
// window); Reverse.Pos, Len, Tm, GC and Warnings describe the template
// window itself.
type Pair struct {
	Forward candidate.Candidate
	Reverse candidate.Candidate
	AmpLen  int
	Score   float64
}

// Stats describes the work done by one Run.
type Stats struct {
	InputLen          int  // after sanitizing
	SequenceLen       int  // after truncation
	Truncated         bool // InputLen exceeded MaxSequenceLen
	ForwardCandidates int  // before pruning
	ReverseCandidates int  // before pruning
	PairsScored       int  // pairs inside the amplicon bounds
}

// Result bundles the ranked pairs with run statistics.
type Result struct {
	Pairs []Pair
	Stats Stats
}

// Prepare sanitizes raw input and truncates it to MaxSequenceLen.
func Prepare(raw string) (clean string, truncated bool) {
	return clip(seq.Sanitize(raw))
}

func clip(clean string) (string, bool) {
	if len(clean) > MaxSequenceLen {
		return clean[:MaxSequenceLen], true
	}
	return clean, false
}

// Design returns at most p.TopN pairs, best (lowest score) first. Pairs with
// equal scores keep their generation order.
func Design(raw string, p Params) []Pair {
	return Run(raw, p).Pairs
}

// Run is Design plus statistics.
func Run(raw string, p Params) Result {
	full := seq.Sanitize(raw)
	clean, truncated := clip(full)
	res := Result{Stats: Stats{InputLen: len(full), SequenceLen: len(clean), Truncated: truncated}}
	if len(clean) == 0 || p.TopN <= 0 {
		return res
	}

	fwdAll, revAll := enumerateRoles(clean, p)
	res.Stats.ForwardCandidates = len(fwdAll)
	res.Stats.ReverseCandidates = len(revAll)

	fwd := byPruneKey(fwdAll, p.TmTarget)
	if len(fwd) > p.candidateCap() {
		fwd = fwd[:p.candidateCap()]
	}
	idx := newReverseIndex(revAll, p)

	top, scored := pairAll(fwd, idx, p)
	res.Stats.PairsScored = scored
	res.Pairs = materialize(fwd, top)
	return res
}

// enumerateRoles builds the forward- and reverse-role candidate sets. They
// are identical by construction but owned separately.
func enumerateRoles(s string, p Params) (fwd, rev []candidate.Candidate) {
	w := p.Window()
	if p.Workers <= 1 {
		return candidate.Enumerate(s, w), candidate.Enumerate(s, w)
	}
	var g errgroup.Group
	g.Go(func() error {
		fwd = candidate.Enumerate(s, w)
		return nil
	})
	g.Go(func() error {
		rev = candidate.Enumerate(s, w)
		return nil
	})
	_ = g.Wait()
	return fwd, rev
}

// byPruneKey returns a copy of cs stably sorted by candidate.PruneKey.
func byPruneKey(cs []candidate.Candidate, tmTarget float64) []candidate.Candidate {
	keys := make([]float64, len(cs))
	order := make([]int, len(cs))
	for i, c := range cs {
		keys[i] = candidate.PruneKey(c, tmTarget)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return keys[order[a]] < keys[order[b]] })
	out := make([]candidate.Candidate, len(cs))
	for i, j := range order {
		out[i] = cs[j]
	}
	return out
}

type revEntry struct {
	cand  candidate.Candidate // template window
	oligo string              // reverse complement of cand.Seq
	rich3 bool                // oligo has a GC-rich 3' end
}

// reverseIndex maps template offsets to the reverse candidates starting there.
type reverseIndex struct {
	positions []int // ascending
	byPos     map[int][]*revEntry
}

// newReverseIndex indexes the reverse set by position. When the set exceeds
// the cap it is pruned first and the index is built from the pruned order;
// otherwise the enumeration order is kept.
func newReverseIndex(all []candidate.Candidate, p Params) reverseIndex {
	kept := all
	if len(all) > p.candidateCap() {
		kept = byPruneKey(all, p.TmTarget)[:p.candidateCap()]
	}
	idx := reverseIndex{byPos: make(map[int][]*revEntry)}
	for _, c := range kept {
		oligo := seq.RevComp(c.Seq)
		e := &revEntry{
			cand:  c,
			oligo: oligo,
			rich3: structure.GCRich3Prime(oligo, structure.DefaultGCThreshold),
		}
		if _, ok := idx.byPos[c.Pos]; !ok {
			idx.positions = append(idx.positions, c.Pos)
		}
		idx.byPos[c.Pos] = append(idx.byPos[c.Pos], e)
	}
	sort.Ints(idx.positions)
	return idx
}

// pairAll crosses the forward list with the reverse index. With several
// workers the forward list is split into contiguous chunks; each chunk keeps
// its own top-N and the chunks are merged by (score, generation order), so
// the result matches a single-threaded run exactly.
func pairAll(fwd []candidate.Candidate, idx reverseIndex, p Params) ([]ranked, int) {
	if len(fwd) == 0 || len(idx.positions) == 0 {
		return nil, 0
	}
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(fwd) {
		workers = len(fwd)
	}
	chunk := (len(fwd) + workers - 1) / workers
	parts := make([]*topN, workers)
	counts := make([]int, workers)

	run := func(w int) {
		sel := newTopN(p.TopN)
		lo := w * chunk
		hi := min(lo+chunk, len(fwd))
		for fi := lo; fi < hi; fi++ {
			counts[w] += pairForward(fi, fwd[fi], idx, p, sel)
		}
		parts[w] = sel
	}

	if workers == 1 {
		run(0)
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				run(w)
				return nil
			})
		}
		_ = g.Wait()
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return mergeTop(p.TopN, parts), total
}

// pairForward offers every valid pair for forward candidate f and returns
// how many were scored.
func pairForward(fi int, f candidate.Candidate, idx reverseIndex, p Params, sel *topN) int {
	fRich := structure.GCRich3Prime(f.Seq, structure.DefaultGCThreshold)
	start := sort.SearchInts(idx.positions, f.Pos+1)
	n := 0
	for _, rpos := range idx.positions[start:] {
		// any primer starting here already overshoots AmpMax
		if rpos-f.Pos >= p.AmpMax {
			break
		}
		for _, e := range idx.byPos[rpos] {
			amp := e.cand.End() - f.Pos
			if amp < p.AmpMin || amp > p.AmpMax {
				continue
			}
			sel.offer(ranked{
				score: score(f, e.cand, fRich, e.rich3, amp, p),
				fwd:   fi,
				seq:   n,
				rev:   e,
				amp:   amp,
			})
			n++
		}
	}
	return n
}

func materialize(fwd []candidate.Candidate, top []ranked) []Pair {
	if len(top) == 0 {
		return nil
	}
	out := make([]Pair, len(top))
	for i, r := range top {
		f := fwd[r.fwd]
		f.Warnings = slices.Clone(f.Warnings)
		rev := r.rev.cand
		rev.Seq = r.rev.oligo
		rev.Warnings = slices.Clone(rev.Warnings)
		out[i] = Pair{Forward: f, Reverse: rev, AmpLen: r.amp, Score: r.score}
	}
	return out
}
