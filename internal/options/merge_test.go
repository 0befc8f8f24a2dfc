package options

import (
	"strings"
	"testing"
)

func TestMergeGivenOverridesDefaults(t *testing.T) {
	t.Parallel()

	defaults := Tokenize([]string{"--oneline", "--sort", "size", "--classify"})
	given := Tokenize([]string{"--grid", "--sort", "name", "src"})

	p := Merge(defaults, given, Constraints)
	if p.Err != nil {
		t.Fatalf("Err=%v", p.Err)
	}
	if p.Has(OptOneline) {
		t.Fatalf("--oneline conflicts with the given --grid and should be dropped")
	}
	if !p.Has(OptGrid) || !p.Has(OptClassify) {
		t.Fatalf("grid=%v classify=%v", p.Has(OptGrid), p.Has(OptClassify))
	}
	if v, _ := p.Value(OptSort); v != "name" {
		t.Fatalf("sort=%q want=name", v)
	}
	if strings.Join(p.Args, ",") != "src" {
		t.Fatalf("Args=%v", p.Args)
	}

	o, err := NewValidator().Validate(p)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if o.Mode != ModeGrid {
		t.Fatalf("Mode=%s want=grid", o.Mode)
	}
}

func TestMergeDropsDefaultsMadeUselessByGiven(t *testing.T) {
	t.Parallel()

	p := Merge(Tokenize([]string{"--across"}), Tokenize([]string{"--long"}), Constraints)
	if p.Has(OptAcross) {
		t.Fatalf("--across is useless given --long and should be dropped")
	}
	p = Merge(Tokenize([]string{"--oneline"}), Tokenize([]string{"-l"}), Constraints)
	if p.Has(OptOneline) {
		t.Fatalf("--oneline is useless given --long and should be dropped")
	}
}

func TestMergeKeepsDefaultsSubjectToValidation(t *testing.T) {
	t.Parallel()

	p := Merge(Tokenize([]string{"--binary"}), Tokenize(nil), Constraints)
	_, err := NewValidator().Validate(p)
	m, ok := err.(Misfire)
	if !ok {
		t.Fatalf("err=%v want Misfire", err)
	}
	if got := Text(m); got != "Option --binary is useless without option --long." {
		t.Fatalf("Text=%q", got)
	}
}

func TestMergeArgsAndErrors(t *testing.T) {
	t.Parallel()

	p := Merge(Tokenize([]string{"-a", "home"}), Tokenize(nil), Constraints)
	if strings.Join(p.Args, ",") != "home" {
		t.Fatalf("default positional args should apply when none are given: %v", p.Args)
	}

	p = Merge(Tokenize([]string{"--nope"}), Tokenize(nil), Constraints)
	if p.Err == nil || !strings.HasPrefix(p.Err.Error(), "default_args: unknown flag: --nope") {
		t.Fatalf("Err=%v", p.Err)
	}

	p = Merge(Tokenize([]string{"--nope"}), Tokenize([]string{"--zzz"}), Constraints)
	if p.Err == nil || p.Err.Error() != "unknown flag: --zzz" {
		t.Fatalf("given errors come first: Err=%v", p.Err)
	}
}
