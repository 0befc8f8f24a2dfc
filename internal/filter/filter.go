package filter

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Reason describes why an entry is hidden from a listing.
type Reason string

const (
	// Shown means the entry is listed.
	Shown Reason = ""
	// ExcludedHidden marks dot files when --all is not given.
	ExcludedHidden Reason = "excluded_hidden"
	// ExcludedIgnoreGlob marks entries matching an --ignore-glob pattern.
	ExcludedIgnoreGlob Reason = "excluded_ignore_glob"
	// ExcludedGitignore marks entries matched by .gitignore rules.
	ExcludedGitignore Reason = "excluded_gitignore"
)

// Rules are the ignore settings shared by every listed root.
type Rules struct {
	All          bool
	Globs        []string
	UseGitignore bool
}

// Filter decides which entries below one root are listed.
type Filter struct {
	root      string
	rules     Rules
	gitignore gitignore.Matcher
}

// New builds a filter for entries below root.
func New(root string, rules Rules) (*Filter, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}
	for _, g := range rules.Globs {
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("invalid glob pattern %q", g)
		}
	}

	var matcher gitignore.Matcher
	if rules.UseGitignore {
		fs := osfs.New(abs)
		pats, err := gitignore.ReadPatterns(fs, nil)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read gitignore: %w", err)
		}
		matcher = gitignore.NewMatcher(pats)
	}

	return &Filter{root: abs, rules: rules, gitignore: matcher}, nil
}

// Root returns the absolute root the filter was built for.
func (f *Filter) Root() string { return f.root }

// Check reports whether the entry at rel (slash-separated, relative to the
// root) is excluded, and why. Rules apply in order: hidden, ignore globs,
// gitignore.
func (f *Filter) Check(rel string, isDir bool) Reason {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "./")
	name := path.Base(rel)

	if !f.rules.All && strings.HasPrefix(name, ".") && name != "." && name != ".." {
		return ExcludedHidden
	}
	if matchesAny(name, rel, f.rules.Globs) {
		return ExcludedIgnoreGlob
	}
	if f.gitignore != nil {
		if f.gitignore.Match(strings.Split(rel, "/"), isDir) {
			return ExcludedGitignore
		}
	}
	return Shown
}

// Excluded is shorthand for Check(rel, isDir) != Shown.
func (f *Filter) Excluded(rel string, isDir bool) bool {
	return f.Check(rel, isDir) != Shown
}

// Patterns are matched against the bare name first and then the path
// relative to the root, so "*.o" and "build/**" both work.
func matchesAny(name, rel string, patterns []string) bool {
	for _, pat := range patterns {
		if pat == "" {
			continue
		}
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pat, rel); err == nil && ok {
			return true
		}
	}
	return false
}
