package options

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mmrzaf/lx/internal/version"
)

// Usage renders the help text for decls, grouped by section in first-seen
// order.
func Usage(decls []Decl) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Usage:\n  %s [options] [files...]\n", version.Program)

	var sections []Section
	bySection := map[Section][]Decl{}
	for _, d := range decls {
		if _, ok := bySection[d.Section]; !ok {
			sections = append(sections, d.Section)
		}
		bySection[d.Section] = append(bySection[d.Section], d)
	}

	for _, s := range sections {
		fmt.Fprintf(&buf, "\n%s\n", s)
		tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
		for _, d := range bySection[s] {
			fmt.Fprintf(tw, "  %s\t%s\n", flagSpec(d), d.Usage)
		}
		_ = tw.Flush()
	}
	return strings.TrimRight(buf.String(), "\n")
}

func flagSpec(d Decl) string {
	var sb strings.Builder
	if d.Short != "" {
		sb.WriteString("-" + d.Short + ", ")
	} else {
		sb.WriteString("    ")
	}
	sb.WriteString("--" + d.Name)
	if d.TakesValue() {
		sb.WriteString(" " + d.Value)
	}
	return sb.String()
}
