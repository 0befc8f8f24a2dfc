package options

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	p := Tokenize([]string{"-lR", "src", "--level", "3", "-I*.o", "--", "-weird"})
	if p.Err != nil {
		t.Fatalf("Tokenize err=%v", p.Err)
	}
	for _, name := range []string{OptLong, OptRecurse, OptLevel, OptIgnoreGlob} {
		if !p.Has(name) {
			t.Fatalf("missing option %q", name)
		}
	}
	if p.Has(OptAll) {
		t.Fatalf("unexpected option %q", OptAll)
	}
	if v, ok := p.Value(OptLevel); !ok || v != "3" {
		t.Fatalf("level=%q ok=%t", v, ok)
	}
	if v, ok := p.Value(OptIgnoreGlob); !ok || v != "*.o" {
		t.Fatalf("ignore-glob=%q ok=%t", v, ok)
	}
	if _, ok := p.Value(OptLong); ok {
		t.Fatalf("switch should carry no value")
	}
	if !reflect.DeepEqual(p.Args, []string{"src", "-weird"}) {
		t.Fatalf("Args=%v", p.Args)
	}
	if p.Len() != 4 {
		t.Fatalf("Len=%d want=4", p.Len())
	}
}

func TestTokenizeErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		argv []string
		want string
	}{
		{[]string{"--nope"}, "unknown flag: --nope"},
		{[]string{"-z"}, "unknown shorthand flag: 'z'"},
		{[]string{"--level"}, "flag needs an argument"},
	}
	for _, tc := range cases {
		p := Tokenize(tc.argv)
		if p.Err == nil || !strings.Contains(p.Err.Error(), tc.want) {
			t.Fatalf("%v: err=%v want containing %q", tc.argv, p.Err, tc.want)
		}
		if p.Has(OptLevel) {
			t.Fatalf("%v: failed parse should carry no options", tc.argv)
		}
	}
}

func TestTokenizeFalseSwitchIsAbsent(t *testing.T) {
	t.Parallel()

	p := Tokenize([]string{"--all=false", "--long=true"})
	if p.Err != nil {
		t.Fatalf("Tokenize err=%v", p.Err)
	}
	if p.Has(OptAll) {
		t.Fatalf("--all=false should not count as given")
	}
	if !p.Has(OptLong) {
		t.Fatalf("--long=true should count as given")
	}
}

func TestUsageListsEveryOption(t *testing.T) {
	t.Parallel()

	u := Usage(Decls)
	if !strings.HasPrefix(u, "Usage:\n  lx [options] [files...]\n") {
		t.Fatalf("usage header:\n%s", u)
	}
	for _, s := range []Section{SectionMeta, SectionDisplay, SectionFilter, SectionLong} {
		if !strings.Contains(u, "\n"+string(s)+"\n") {
			t.Fatalf("usage missing section %q:\n%s", s, u)
		}
	}
	for _, d := range Decls {
		if !strings.Contains(u, flagSpec(d)) {
			t.Fatalf("usage missing %q:\n%s", flagSpec(d), u)
		}
	}
	if !strings.Contains(u, "-L, --level DEPTH") || !strings.Contains(u, "    --color WHEN") {
		t.Fatalf("usage flag specs:\n%s", u)
	}
	if strings.HasSuffix(u, "\n") {
		t.Fatalf("usage should not end with a newline")
	}
}
