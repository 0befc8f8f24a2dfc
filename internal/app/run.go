package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/mmrzaf/lx/internal/config"
	"github.com/mmrzaf/lx/internal/listing"
	"github.com/mmrzaf/lx/internal/options"
)

// RunOptions configures one lx invocation.
type RunOptions struct {
	Args       []string // command line without the program name
	ConfigPath string
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
}

// Run validates the command line and lists the requested paths.
//
// A rejected command line is returned as an options.Misfire, unwrapped, so
// callers can report it with options.Report. Other failures are *Error.
func Run(ctx context.Context, opts RunOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	v := options.NewValidator()
	given := options.Tokenize(opts.Args)
	if given.Err != nil || given.Has(options.OptHelp) || given.Has(options.OptVersion) {
		// Reported before the config is read so a broken file cannot hide them.
		_, err := v.Validate(given)
		return misfire(log, err)
	}

	cfgPath := config.FindConfigPath(opts.ConfigPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return Wrapf(ExitMisfire, err, "load config")
	}
	log.Debug("config", "path", cfgPath, "default_args", len(cfg.DefaultArgs))

	parsed := options.Merge(options.Tokenize(cfg.DefaultArgs), given, v.Table)
	log.Debug("tokenized", "options", parsed.Len(), "args", len(parsed.Args))

	o, err := v.Validate(parsed)
	if err != nil {
		return misfire(log, err)
	}
	o.IgnoreGlobs = append(o.IgnoreGlobs, cfg.Ignore.Globs...)
	o.GitIgnore = o.GitIgnore || cfg.Ignore.UseGitignore

	fd, tty := terminalFd(opts.Stdout)
	l := &listing.Lister{
		Opts:   o,
		Width:  resolveWidth(o, fd, tty),
		Color:  useColor(o.Color, tty),
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		Logger: log,
	}
	err = l.List(ctx)
	if errors.Is(err, listing.ErrUnlisted) {
		return Reported(ExitRuntime, err)
	}
	return Wrap(ExitRuntime, err)
}

func misfire(log *slog.Logger, err error) error {
	var m options.Misfire
	if errors.As(err, &m) {
		log.Debug("misfire", "kind", options.Kind(m))
	}
	return err
}

func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return -1, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// resolveWidth returns the grid width, or 0 for one entry per line.
// --width wins; then the terminal size; then $COLUMNS.
func resolveWidth(o options.Options, fd int, tty bool) int {
	if o.Mode != options.ModeGrid {
		return 0
	}
	if o.Width > 0 {
		return o.Width
	}
	if tty {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && n > 0 {
		return n
	}
	return 0
}

func useColor(when options.ColorWhen, tty bool) bool {
	switch when {
	case options.ColorAlways:
		return true
	case options.ColorNever:
		return false
	}
	return tty && os.Getenv("NO_COLOR") == ""
}
