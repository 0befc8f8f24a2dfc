package options

import (
	"fmt"
	"io"
)

// Report writes m to the stream it belongs on and returns the exit status
// the process should end with. Help and version output go to stdout;
// everything else is a diagnostic for stderr.
func Report(m Misfire, stdout, stderr io.Writer) int {
	w := stderr
	switch m.(type) {
	case Help, Version:
		w = stdout
	}
	_, _ = fmt.Fprintln(w, Text(m))
	return m.ExitCode()
}
