package options

import (
	"io"

	"github.com/spf13/pflag"
)

// Parsed is one tokenized command line: which options were given, their
// values, and the positional arguments. Err is set instead when the
// arguments could not be tokenized at all.
type Parsed struct {
	Args []string
	Err  error

	present map[string]string
	valued  map[string]bool
}

// Has reports whether the option was given.
func (p Parsed) Has(name string) bool {
	_, ok := p.present[name]
	return ok
}

// Value returns the option's argument. ok is false for absent options and
// for switches that take no value.
func (p Parsed) Value(name string) (string, bool) {
	v, ok := p.present[name]
	if !ok || !p.valued[name] {
		return "", false
	}
	return v, true
}

// Len returns the number of distinct options given.
func (p Parsed) Len() int { return len(p.present) }

// NewParsed builds a Parsed from already-split parts. Switches are given by
// name; valued options by name and value.
func NewParsed(switches []string, values map[string]string, args []string) Parsed {
	p := Parsed{
		Args:    append([]string(nil), args...),
		present: map[string]string{},
		valued:  map[string]bool{},
	}
	for _, s := range switches {
		p.present[s] = ""
	}
	for k, v := range values {
		p.present[k] = v
		p.valued[k] = true
	}
	return p
}

// Failed returns a Parsed carrying only a tokenizer error.
func Failed(err error) Parsed {
	return Parsed{Err: err}
}

// NewFlagSet builds the pflag set for the declared options. Every valued
// option is registered as a string so numeric checks stay with the
// validator.
func NewFlagSet(decls []Decl) *pflag.FlagSet {
	fs := pflag.NewFlagSet("lx", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	for _, d := range decls {
		if d.TakesValue() {
			fs.StringP(d.Name, d.Short, "", d.Usage)
			continue
		}
		fs.BoolP(d.Name, d.Short, false, d.Usage)
	}
	return fs
}

// Tokenize splits argv into a Parsed using the declared options.
func Tokenize(argv []string) Parsed {
	return tokenize(Decls, argv)
}

func tokenize(decls []Decl, argv []string) Parsed {
	fs := NewFlagSet(decls)
	if err := fs.Parse(argv); err != nil {
		return Failed(err)
	}
	p := Parsed{
		Args:    append([]string(nil), fs.Args()...),
		present: map[string]string{},
		valued:  map[string]bool{},
	}
	for _, d := range decls {
		if !fs.Changed(d.Name) {
			continue
		}
		if d.TakesValue() {
			v, _ := fs.GetString(d.Name)
			p.present[d.Name] = v
			p.valued[d.Name] = true
			continue
		}
		on, _ := fs.GetBool(d.Name)
		if on {
			p.present[d.Name] = ""
		}
	}
	return p
}
