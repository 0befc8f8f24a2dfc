package options

import (
	"bytes"
	"errors"
	"testing"
)

func TestReport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		m          Misfire
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"help", Help{Text: "Usage:\n  lx"}, 2, "Usage:\n  lx\n", ""},
		{"conflict", Conflict{A: "tree", B: "list-dirs"}, 3, "", "Option --tree conflicts with option list-dirs.\n"},
		{"invalid", InvalidOptions{Err: errors.New("unknown flag: --nope")}, 3, "", "unknown flag: --nope\n"},
		{"useless2", Useless2{Option: "level", A: "recurse", B: "tree"}, 3, "", "Option --level is useless without options --recurse or --tree.\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := Report(tc.m, &stdout, &stderr)
			if code != tc.wantCode {
				t.Fatalf("code=%d want=%d", code, tc.wantCode)
			}
			if stdout.String() != tc.wantStdout {
				t.Fatalf("stdout=%q want=%q", stdout.String(), tc.wantStdout)
			}
			if stderr.String() != tc.wantStderr {
				t.Fatalf("stderr=%q want=%q", stderr.String(), tc.wantStderr)
			}
		})
	}
}

func TestReportVersionGoesToStdout(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := Report(Version{}, &stdout, &stderr); code != 3 {
		t.Fatalf("code=%d want=3", code)
	}
	if stdout.Len() == 0 || stderr.Len() != 0 {
		t.Fatalf("stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}
