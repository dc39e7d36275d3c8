// Package designapp wires the qpcr command line to core/design.
package designapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"qpcr/core/design"
	"qpcr/core/fasta"
	"qpcr/internal/appshell"
	"qpcr/internal/designcli"
	"qpcr/internal/logging"
	"qpcr/internal/output"
	"qpcr/internal/runutil"
	"qpcr/internal/version"
	"qpcr/internal/writers"
)

// inlineRecord names the template given with --seq.
const inlineRecord = "seq"

// flushOr flushes outw and maps the result to an exit code, treating a
// closed downstream pipe as success.
func flushOr(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appshell.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := designcli.NewFlagSet("qpcr")
	fs.SetOutput(io.Discard)

	opts, err := designcli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flushOr(outw, stderr, appshell.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.Usage()
		return flushOr(outw, stderr, appshell.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "qpcr version %s\n", version.Version)
		return flushOr(outw, stderr, appshell.ExitOK)
	}

	log := logging.New(stderr, opts.LogFormat, logging.LevelFor(opts.Quiet, opts.Verbose))
	p := opts.Params
	p.Workers = runutil.ResolveThreads(opts.Threads)
	for _, w := range runutil.ParamWarnings(p) {
		log.Warn(w)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	rows, writeErr := writers.StartPairWriter(outw, opts.Output, opts.Header, opts.Pretty, p.Workers*4)

	total := 0
	runRecord := func(rec fasta.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := designRecord(ctx, log, rec, p, rows)
		total += n
		return err
	}

	var rerr error
	if opts.Seq != "" {
		rerr = runRecord(fasta.Record{ID: inlineRecord, Seq: opts.Seq})
	} else {
		for _, path := range opts.SeqFiles {
			if rerr = fasta.ReadPathCtx(ctx, path, runRecord); rerr != nil {
				if !errors.Is(rerr, context.Canceled) {
					rerr = fmt.Errorf("%s: %w", path, rerr)
				}
				break
			}
		}
	}
	close(rows)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return appshell.ExitOK
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return appshell.ExitIO
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appshell.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}

	if rerr != nil {
		if errors.Is(rerr, context.Canceled) {
			return appshell.ExitCanceled
		}
		log.Error("reading input failed", "error", rerr)
		return appshell.ExitIO
	}
	if total == 0 {
		return opts.NoMatchExitCode
	}
	return appshell.ExitOK
}

// designRecord runs one design and forwards its ranked rows. It returns the
// number of pairs sent.
func designRecord(ctx context.Context, log *slog.Logger, rec fasta.Record, p design.Params, rows chan<- output.Row) (int, error) {
	start := time.Now()
	res := design.Run(rec.Seq, p)
	elapsed := time.Since(start)

	if res.Stats.Truncated {
		log.Warn(runutil.TruncationWarning(rec.ID, res.Stats.InputLen))
	}
	log.Debug("designed",
		"record", rec.ID,
		"sequence_length", res.Stats.SequenceLen,
		"forward_candidates", res.Stats.ForwardCandidates,
		"reverse_candidates", res.Stats.ReverseCandidates,
		"pairs_scored", res.Stats.PairsScored,
		"pairs", len(res.Pairs),
		"duration", elapsed,
	)
	if len(res.Pairs) == 0 {
		log.Warn("no qualifying primer pair found", "record", rec.ID)
		return 0, nil
	}
	for _, r := range output.RowsFor(rec.ID, res.Pairs) {
		select {
		case rows <- r:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return len(res.Pairs), nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
