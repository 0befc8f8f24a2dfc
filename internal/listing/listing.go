package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/mmrzaf/lx/internal/filter"
	"github.com/mmrzaf/lx/internal/options"
)

// ErrUnlisted is returned by List when some paths could not be read. Each of
// them has already been reported on Stderr.
var ErrUnlisted = errors.New("path(s) could not be listed")

// Lister writes the entries selected by a validated command line. It prints
// names only; the long view columns are accepted but not rendered.
type Lister struct {
	Opts   options.Options
	Width  int // 0 prints one entry per line
	Color  bool
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// List lists every path in Opts.Paths. A path that cannot be read is
// reported on Stderr and the rest are still listed; the returned error
// then counts the failures.
func (l *Lister) List(ctx context.Context) error {
	log := l.logger()
	log.Debug("listing", "paths", len(l.Opts.Paths), "mode", l.Opts.Mode.String(), "tree", l.Opts.Tree, "recurse", l.Opts.Recurse)

	var (
		files  []Entry
		dirs   []string
		failed int
	)
	for _, p := range l.Opts.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			// Dangling symlinks are still listable as themselves.
			lfi, lerr := os.Lstat(p)
			if lerr != nil {
				l.warn(p, err)
				failed++
				continue
			}
			fi = lfi
		}
		if fi.IsDir() && !l.Opts.ListDirs {
			dirs = append(dirs, p)
			continue
		}
		files = append(files, entryFromInfo(p, p, fi))
	}
	Sort(files, l.Opts.Sort, l.Opts.DirsFirst, l.Opts.Reverse)

	first := true
	if len(files) > 0 {
		l.printEntries(files)
		first = false
	}

	header := len(dirs) > 1 || len(files) > 0 || failed > 0 || l.Opts.Recurse
	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := filter.New(d, filter.Rules{
			All:          l.Opts.All,
			Globs:        l.Opts.IgnoreGlobs,
			UseGitignore: l.Opts.GitIgnore,
		})
		if err != nil {
			return fmt.Errorf("filter %s: %w", d, err)
		}

		var n int
		if l.Opts.Tree {
			n, err = l.listTree(ctx, f, d, &first)
		} else {
			n, err = l.listDir(ctx, f, d, "", 1, header, &first)
		}
		if err != nil {
			return err
		}
		failed += n
	}

	if failed > 0 {
		return fmt.Errorf("%d %w", failed, ErrUnlisted)
	}
	return nil
}

func (l *Lister) listDir(ctx context.Context, f *filter.Filter, dir, rel string, depth int, header bool, first *bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	entries, err := l.readDir(f, dir, rel)
	if err != nil {
		l.warn(dir, err)
		return 1, nil
	}

	if !*first {
		_, _ = fmt.Fprintln(l.Stdout)
	}
	*first = false
	if header {
		_, _ = fmt.Fprintf(l.Stdout, "%s:\n", dir)
	}
	l.printEntries(entries)

	if !l.Opts.Recurse || (l.Opts.Level > 0 && depth >= l.Opts.Level) {
		return 0, nil
	}
	failed := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		n, err := l.listDir(ctx, f, e.Path, joinRel(rel, e.Name), depth+1, true, first)
		if err != nil {
			return failed, err
		}
		failed += n
	}
	return failed, nil
}

func (l *Lister) readDir(f *filter.Filter, dir, rel string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	log := l.logger()
	out := make([]Entry, 0, len(des))
	for _, de := range des {
		r := joinRel(rel, de.Name())
		if reason := f.Check(r, de.IsDir()); reason != filter.Shown {
			log.Debug("excluded", "path", r, "reason", string(reason))
			continue
		}
		fi, err := de.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			log.Debug("skipped", "path", r, "err", err)
			continue
		}
		out = append(out, entryFromInfo(de.Name(), filepath.Join(dir, de.Name()), fi))
	}
	Sort(out, l.Opts.Sort, l.Opts.DirsFirst, l.Opts.Reverse)
	return out, nil
}

func (l *Lister) printEntries(entries []Entry) {
	cells := make([]cell, 0, len(entries))
	for _, e := range entries {
		cells = append(cells, l.cell(e))
	}
	if l.Width > 0 && l.Opts.Mode == options.ModeGrid {
		writeGrid(l.Stdout, cells, l.Width, l.Opts.Across)
		return
	}
	for _, c := range cells {
		_, _ = fmt.Fprintln(l.Stdout, c.text)
	}
}

func (l *Lister) cell(e Entry) cell {
	text := e.Name
	if l.Color {
		if code := colorCode(e.Mode); code != "" {
			text = "\x1b[" + code + "m" + text + "\x1b[0m"
		}
	}
	width := utf8.RuneCountInString(e.Name)
	if l.Opts.Classify {
		s := classifySuffix(e.Mode)
		text += s
		width += len(s)
	}
	return cell{text: text, width: width}
}

func (l *Lister) warn(path string, err error) {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	_, _ = fmt.Fprintf(l.Stderr, "lx: %s: %v\n", path, err)
}

func (l *Lister) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}

func classifySuffix(m fs.FileMode) string {
	switch {
	case m.IsDir():
		return "/"
	case m&fs.ModeSymlink != 0:
		return "@"
	case m&fs.ModeNamedPipe != 0:
		return "|"
	case m&fs.ModeSocket != 0:
		return "="
	case m.IsRegular() && m&0o111 != 0:
		return "*"
	}
	return ""
}

func colorCode(m fs.FileMode) string {
	switch {
	case m.IsDir():
		return "1;34"
	case m&fs.ModeSymlink != 0:
		return "36"
	case m&(fs.ModeNamedPipe|fs.ModeSocket|fs.ModeDevice) != 0:
		return "33"
	case m.IsRegular() && m&0o111 != 0:
		return "1;32"
	}
	return ""
}
