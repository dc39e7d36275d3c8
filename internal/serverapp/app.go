// Package serverapp runs qpcr-server: flag parsing, listener and graceful
// shutdown around internal/server.
package serverapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"qpcr/internal/appshell"
	"qpcr/internal/cliutil"
	"qpcr/internal/logging"
	"qpcr/internal/metrics"
	"qpcr/internal/runutil"
	"qpcr/internal/server"
	"qpcr/internal/version"
)

// AddrEnv supplies the default listen address.
const AddrEnv = "QPCR_ADDR"

const defaultAddr = ":8080"

// Options holds the server flags.
type Options struct {
	Addr            string
	Threads         int
	CacheSize       int
	ShutdownTimeout time.Duration
	LogFormat       string
	Quiet           bool
	Verbose         bool
	Version         bool
}

// ParseArgs registers and parses the server flags. Returns flag.ErrHelp for -h.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	fs.StringVar(&o.Addr, "addr", cliutil.EnvDefault(AddrEnv, defaultAddr), "listen address (env "+AddrEnv+")")
	fs.IntVar(&o.Threads, "threads", 1, "worker goroutines per design (0=all CPUs)")
	fs.IntVar(&o.CacheSize, "cache-size", 256, "recent results kept in memory (0=off)")
	fs.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "grace period for in-flight requests")
	fs.StringVar(&o.LogFormat, "log-format", logging.FormatText, "log format: text | json")
	fs.BoolVar(&o.Quiet, "quiet", false, "log errors only")
	fs.BoolVar(&o.Verbose, "verbose", false, "log per-run statistics")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show help")
	fs.BoolVar(&help, "help", false, "show help")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	switch {
	case o.Threads < 0:
		return o, errors.New("--threads must be ≥ 0")
	case o.CacheSize < 0:
		return o, errors.New("--cache-size must be ≥ 0")
	case o.ShutdownTimeout <= 0:
		return o, errors.New("--shutdown-timeout must be positive")
	}
	return o, logging.ValidateFormat(o.LogFormat)
}

func serverLevel(quiet, verbose bool) slog.Level {
	if !quiet && !verbose {
		return slog.LevelInfo // one line per request
	}
	return logging.LevelFor(quiet, verbose)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("qpcr-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stdout, "qpcr-server – qPCR primer-pair designer over HTTP\n\nVersion: %s\n\nFlags:\n", version.Version)
			fs.SetOutput(stdout)
			fs.PrintDefaults()
			return appshell.ExitOK
		}
		fmt.Fprintln(stderr, "error:", err)
		return appshell.ExitUsage
	}
	if opts.Version {
		fmt.Fprintf(stdout, "qpcr-server version %s\n", version.Version)
		return appshell.ExitOK
	}

	log := logging.New(stderr, opts.LogFormat, serverLevel(opts.Quiet, opts.Verbose))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	srv := server.New(server.Config{
		Logger:    log,
		Metrics:   metrics.New(reg),
		Workers:   runutil.ResolveThreads(opts.Threads),
		CacheSize: opts.CacheSize,
	})

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		log.Error("listen failed", "addr", opts.Addr, "error", err)
		return appshell.ExitIO
	}
	if err := Serve(ctx, ln, srv.Router(), opts.ShutdownTimeout, log); err != nil {
		log.Error("server stopped", "error", err)
		return appshell.ExitIO
	}
	return appshell.ExitOK
}

// Serve runs handler on ln until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, grace time.Duration, log *slog.Logger) error {
	hs := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- hs.Serve(ln) }()
	log.Info("listening", "addr", ln.Addr().String(), "version", version.Version)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := hs.Shutdown(sctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
