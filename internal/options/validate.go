package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validator checks tokenized command lines against a constraint table.
type Validator struct {
	Table *Table
	Help  string
}

// NewValidator returns a validator for lx's own options.
func NewValidator() *Validator {
	return &Validator{Table: Constraints, Help: Usage(Decls)}
}

// Validate turns p into Options, or reports the first problem found as a
// Misfire. Checks run in a fixed order:
//
//  1. tokenizer errors
//  2. --help
//  3. --version
//  4. numeric values, in Table.Numeric order
//  5. conflicts, in table order
//  6. useless rules, in table order
//  7. useless2 rules, in table order
//  8. option values (color, sort, time, time-style, ignore-glob)
//
// The returned error is always a Misfire.
func (v *Validator) Validate(p Parsed) (Options, error) {
	if p.Err != nil {
		return Options{}, InvalidOptions{Err: p.Err}
	}
	if p.Has(OptHelp) {
		return Options{}, Help{Text: v.Help}
	}
	if p.Has(OptVersion) {
		return Options{}, Version{}
	}

	t := v.Table
	if t == nil {
		t = &Table{}
	}

	nums := map[string]int{}
	for _, name := range t.Numeric {
		s, ok := p.Value(name)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
		if err != nil {
			return Options{}, FailedParse{Err: err.(*strconv.NumError)}
		}
		nums[name] = int(n)
	}

	for _, r := range t.Conflicts {
		if p.Has(r.A) && p.Has(r.B) {
			return Options{}, Conflict{A: r.A, B: r.B}
		}
	}
	for _, r := range t.Useless {
		if p.Has(r.Option) && p.Has(r.Other) == r.Given {
			return Options{}, Useless{Option: r.Option, Given: r.Given, Other: r.Other}
		}
	}
	for _, r := range t.Useless2 {
		if p.Has(r.Option) && !p.Has(r.A) && !p.Has(r.B) {
			return Options{}, Useless2{Option: r.Option, A: r.A, B: r.B}
		}
	}

	return build(p, nums)
}

var (
	colorChoices     = []string{string(ColorAlways), string(ColorAuto), string(ColorNever)}
	sortChoices      = []string{"name", "size", "extension", "modified", "accessed", "created", "inode", "none"}
	timeChoices      = []string{string(TimeModified), string(TimeAccessed), string(TimeCreated)}
	timeStyleChoices = []string{"default", "iso", "long-iso", "full-iso"}
)

func build(p Parsed, nums map[string]int) (Options, error) {
	o := Options{
		Paths:     p.Args,
		Mode:      ModeGrid,
		Across:    p.Has(OptAcross),
		Recurse:   p.Has(OptRecurse),
		Tree:      p.Has(OptTree),
		Classify:  p.Has(OptClassify),
		Color:     ColorAuto,
		Width:     nums[OptWidth],
		All:       p.Has(OptAll),
		ListDirs:  p.Has(OptListDirs),
		Level:     nums[OptLevel],
		Reverse:   p.Has(OptReverse),
		Sort:      SortName,
		DirsFirst: p.Has(OptDirsFirst),
		GitIgnore: p.Has(OptGitIgnore),
		Columns: Columns{
			Binary:    p.Has(OptBinary),
			Bytes:     p.Has(OptBytes),
			Group:     p.Has(OptGroup),
			Header:    p.Has(OptHeader),
			Links:     p.Has(OptLinks),
			Inode:     p.Has(OptInode),
			Blocks:    p.Has(OptBlocks),
			Git:       p.Has(OptGit),
			TimeStyle: "default",
			Scale:     p.Has(OptColorScale),
		},
	}
	if len(o.Paths) == 0 {
		o.Paths = []string{"."}
	}
	switch {
	case p.Has(OptLong):
		o.Mode = ModeLong
	case p.Has(OptOneline):
		o.Mode = ModeLines
	}

	if s, ok := p.Value(OptColor); ok {
		if err := oneOf(OptColor, s, colorChoices); err != nil {
			return Options{}, err
		}
		o.Color = ColorWhen(s)
	}
	if s, ok := p.Value(OptSort); ok {
		if err := oneOf(OptSort, s, sortChoices); err != nil {
			return Options{}, err
		}
		o.Sort = SortField(s)
	}
	if s, ok := p.Value(OptTime); ok {
		if err := oneOf(OptTime, s, timeChoices); err != nil {
			return Options{}, err
		}
		o.Columns.Times = append(o.Columns.Times, TimeField(s))
	}
	for _, sw := range []struct {
		opt   string
		field TimeField
	}{
		{OptModified, TimeModified},
		{OptAccessed, TimeAccessed},
		{OptCreated, TimeCreated},
	} {
		if p.Has(sw.opt) && !hasTime(o.Columns.Times, sw.field) {
			o.Columns.Times = append(o.Columns.Times, sw.field)
		}
	}
	if len(o.Columns.Times) == 0 {
		o.Columns.Times = []TimeField{TimeModified}
	}
	if s, ok := p.Value(OptTimeStyle); ok {
		if err := oneOf(OptTimeStyle, s, timeStyleChoices); err != nil {
			return Options{}, err
		}
		o.Columns.TimeStyle = s
	}
	if s, ok := p.Value(OptIgnoreGlob); ok {
		globs, err := SplitGlobs(s)
		if err != nil {
			return Options{}, err
		}
		o.IgnoreGlobs = globs
	}
	return o, nil
}

// SplitGlobs splits a pipe-separated --ignore-glob value and checks every
// pattern.
func SplitGlobs(s string) ([]string, error) {
	var out []string
	for _, g := range strings.Split(s, "|") {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if !doublestar.ValidatePattern(g) {
			return nil, BadArgument(OptIgnoreGlob, fmt.Sprintf("%q is not a valid glob pattern", g))
		}
		out = append(out, g)
	}
	return out, nil
}

func oneOf(option, val string, choices []string) error {
	for _, c := range choices {
		if val == c {
			return nil
		}
	}
	return BadArgument(option, fmt.Sprintf("%q is not a valid value (choices: %s)", val, strings.Join(choices, ", ")))
}

func hasTime(ts []TimeField, f TimeField) bool {
	for _, t := range ts {
		if t == f {
			return true
		}
	}
	return false
}
