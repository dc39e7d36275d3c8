// Package appshell runs a tool's RunContext under a signal-aware context
// and turns its result into a process exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes shared by every qpcr tool.
const (
	ExitOK       = 0
	ExitNoMatch  = 1 // default for --no-match-exit-code
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// RunFunc is the signature every tool's RunContext implements.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs a CLI tool. An empty argument list prints help.
func Main(run RunFunc) {
	os.Exit(start(run))
}

// Serve runs a long-lived tool. An empty argument list means "use defaults".
// The exit code is not normalized: a signal is the usual way to stop.
func Serve(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func start(run RunFunc) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Exec(ctx, os.Args[1:], true, run, os.Stdout, os.Stderr)
}

// Exec calls run and normalizes the exit code: a zero code after the
// context was canceled becomes ExitCanceled.
func Exec(ctx context.Context, argv []string, helpOnEmpty bool, run RunFunc, stdout, stderr io.Writer) int {
	if helpOnEmpty && len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == ExitOK {
		code = ExitCanceled
	}
	return code
}
