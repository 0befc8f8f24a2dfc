package options

import "fmt"

// Merge overlays given on defaults. An option from defaults is dropped when
// given sets it too, or when a conflict or "useless given" rule in t pairs it
// with an option from given. Positional arguments come from given when it
// has any.
func Merge(defaults, given Parsed, t *Table) Parsed {
	if given.Err != nil {
		return given
	}
	if defaults.Err != nil {
		return Failed(fmt.Errorf("default_args: %w", defaults.Err))
	}

	out := Parsed{
		Args:    append([]string(nil), given.Args...),
		present: map[string]string{},
		valued:  map[string]bool{},
	}
	if len(out.Args) == 0 {
		out.Args = append([]string(nil), defaults.Args...)
	}
	for name, v := range defaults.present {
		if given.Has(name) || clashes(t, name, given) {
			continue
		}
		out.present[name] = v
		out.valued[name] = defaults.valued[name]
	}
	for name, v := range given.present {
		out.present[name] = v
		out.valued[name] = given.valued[name]
	}
	return out
}

func clashes(t *Table, name string, given Parsed) bool {
	if t == nil {
		return false
	}
	for _, r := range t.Conflicts {
		if (r.A == name && given.Has(r.B)) || (r.B == name && given.Has(r.A)) {
			return true
		}
	}
	for _, r := range t.Useless {
		if !r.Given {
			continue
		}
		if (r.Option == name && given.Has(r.Other)) || (r.Other == name && given.Has(r.Option)) {
			return true
		}
	}
	return false
}
