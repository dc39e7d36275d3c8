// Package designcli parses the qpcr command line.
package designcli

import (
	"errors"
	"flag"
	"fmt"

	"qpcr/core/design"
	"qpcr/internal/cliutil"
	"qpcr/internal/logging"
	"qpcr/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Seq      string   // inline template (--seq)
	SeqFiles []string // positionals, globs expanded

	Params  design.Params
	Threads int

	// Output
	Output          string
	Pretty          bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	LogFormat string
	Quiet     bool
	Verbose   bool
	Version   bool
}

// ParseArgs registers every flag on fs, parses argv and validates the result.
// Flags and positionals may be interleaved. Returns flag.ErrHelp for -h.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool
	d := design.DefaultParams()
	p := &opt.Params

	fs.StringVar(&opt.Seq, "seq", "", "template sequence")

	fs.IntVar(&p.PrimerMin, "primer-min", d.PrimerMin, "minimum primer length")
	fs.IntVar(&p.PrimerMax, "primer-max", d.PrimerMax, "maximum primer length")
	fs.Float64Var(&p.GCMin, "gc-min", d.GCMin, "minimum GC%")
	fs.Float64Var(&p.GCMax, "gc-max", d.GCMax, "maximum GC%")
	fs.Float64Var(&p.TmTarget, "tm-target", d.TmTarget, "target Tm")
	fs.Float64Var(&p.TmTol, "tm-tol", d.TmTol, "Tm tolerance")
	fs.IntVar(&p.AmpMin, "amp-min", d.AmpMin, "minimum amplicon length")
	fs.IntVar(&p.AmpMax, "amp-max", d.AmpMax, "maximum amplicon length")
	fs.IntVar(&p.TopN, "top", d.TopN, "pairs per record")
	fs.IntVar(&p.TopN, "n", d.TopN, "alias of --top")
	fs.IntVar(&p.MaxCandidatesPerSide, "max-candidates", d.MaxCandidatesPerSide, "candidates kept per side")

	fs.IntVar(&opt.Threads, "threads", 1, "worker goroutines (0=all CPUs)")
	fs.IntVar(&opt.Threads, "t", 1, "alias of --threads")

	fs.StringVar(&opt.Output, "output", output.FormatText, "text | json | jsonl")
	fs.StringVar(&opt.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&opt.Pretty, "pretty", false, "pretty ASCII block (text)")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no pair is found")

	fs.StringVar(&opt.LogFormat, "log-format", logging.FormatText, "text | json")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "per-record statistics")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show help")
	fs.BoolVar(&help, "help", false, "show help")

	pos, err := cliutil.ParseInterleaved(fs, argv)
	if err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	if len(pos) > 0 {
		exp, err := cliutil.ExpandPositionals(pos)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = exp
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants, including design.Params.Validate.
func Validate(o *Options) error {
	switch {
	case o.Seq != "" && len(o.SeqFiles) > 0:
		return errors.New("--seq conflicts with sequence files")
	case o.Seq == "" && len(o.SeqFiles) == 0:
		return errors.New("provide --seq or at least one sequence file")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Pretty && o.Output != output.FormatText {
		return errors.New("--pretty requires --output text")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if err := logging.ValidateFormat(o.LogFormat); err != nil {
		return err
	}
	if err := o.Params.ValidateBounded(); err != nil {
		return fmt.Errorf("invalid design parameters: %w", err)
	}
	return nil
}
