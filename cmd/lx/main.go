package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmrzaf/lx/internal/app"
	"github.com/mmrzaf/lx/internal/options"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWith(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func runWith(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := &cobra.Command{
		Use:           "lx [options] [files...]",
		Short:         "lx lists directory contents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		// Flags are tokenized and validated by internal/options so that
		// every rejection is reported with its own text and exit code.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(ctx, app.RunOptions{
				Args:   args,
				Stdout: stdout,
				Stderr: stderr,
				Logger: loggerFn(stderr, debugEnabled()),
			})
		},
	}
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return app.ExitOK
	}
	var m options.Misfire
	if errors.As(err, &m) {
		return options.Report(m, stdout, stderr)
	}
	var ae *app.Error
	if !errors.As(err, &ae) || !ae.Reported() {
		_, _ = fmt.Fprintln(stderr, "lx:", err)
	}
	return app.ExitCode(err)
}

func debugEnabled() bool {
	v, err := strconv.ParseBool(os.Getenv("LX_DEBUG"))
	return err == nil && v
}

func loggerFn(w io.Writer, debug bool) *slog.Logger {
	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
