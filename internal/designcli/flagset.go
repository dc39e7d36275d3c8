package designcli

import (
	"flag"
	"fmt"
	"io"

	"qpcr/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet whose Usage prints the full
// qpcr help. Register flags with ParseArgs before calling Usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs.Output(), name, fs) }
	return fs
}

func printUsage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – qPCR primer-pair designer\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s [options] --seq ACGT...\n", name)
	fmt.Fprintf(out, "  %s [options] template.fa[.gz] [more.fa ...]   ('-' reads STDIN)\n", name)

	fmt.Fprintln(out, "\nPrimers:")
	fmt.Fprintf(out, "      --primer-min int         Minimum primer length (nt) [%s]\n", def("primer-min"))
	fmt.Fprintf(out, "      --primer-max int         Maximum primer length (nt) [%s]\n", def("primer-max"))
	fmt.Fprintf(out, "      --gc-min float           Minimum GC%% [%s]\n", def("gc-min"))
	fmt.Fprintf(out, "      --gc-max float           Maximum GC%% [%s]\n", def("gc-max"))
	fmt.Fprintf(out, "      --tm-target float        Target Tm (°C) [%s]\n", def("tm-target"))
	fmt.Fprintf(out, "      --tm-tol float           Allowed |Tm - target| (°C) [%s]\n", def("tm-tol"))

	fmt.Fprintln(out, "\nAmplicon:")
	fmt.Fprintf(out, "      --amp-min int            Minimum amplicon length (bp) [%s]\n", def("amp-min"))
	fmt.Fprintf(out, "      --amp-max int            Maximum amplicon length (bp) [%s]\n", def("amp-max"))
	fmt.Fprintf(out, "  -n, --top int                Pairs reported per record [%s]\n", def("top"))

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "      --max-candidates int     Candidates kept per side before pairing (0=default) [%s]\n", def("max-candidates"))
	fmt.Fprintf(out, "  -t, --threads int            Worker goroutines (0=all CPUs) [%s]\n", def("threads"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string          Output: text | json | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "      --pretty                 ASCII view of each pair (text) [%s]\n", def("pretty"))
	fmt.Fprintf(out, "      --no-header              Suppress header line [%s]\n", def("no-header"))
	fmt.Fprintf(out, "      --no-match-exit-code int Exit code when no pair is found [%s]\n", def("no-match-exit-code"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "      --log-format string      Log format on STDERR: text | json [%s]\n", def("log-format"))
	fmt.Fprintf(out, "  -q, --quiet                  Suppress warnings [%s]\n", def("quiet"))
	fmt.Fprintf(out, "      --verbose                Log per-record statistics [%s]\n", def("verbose"))
	fmt.Fprintln(out, "  -v, --version                Print version and exit")
	fmt.Fprintln(out, "  -h, --help                   Show this help and exit")
}
