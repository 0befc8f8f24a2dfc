package options

import (
	"fmt"

	"github.com/mmrzaf/lx/internal/version"
)

// Text renders a misfire as the single line shown to the user.
func Text(m Misfire) string {
	switch m := m.(type) {
	case InvalidOptions:
		if m.Err == nil {
			return ""
		}
		return m.Err.Error()
	case Help:
		return m.Text
	case Version:
		return version.String()
	case Conflict:
		// The second name has no "--". Existing scripts match on this text.
		return fmt.Sprintf("Option --%s conflicts with option %s.", m.A, m.B)
	case Useless:
		if m.Given {
			return fmt.Sprintf("Option --%s is useless given option --%s.", m.Option, m.Other)
		}
		return fmt.Sprintf("Option --%s is useless without option --%s.", m.Option, m.Other)
	case Useless2:
		return fmt.Sprintf("Option --%s is useless without options --%s or --%s.", m.Option, m.A, m.B)
	case FailedParse:
		if m.Err == nil {
			return "Failed to parse number"
		}
		return fmt.Sprintf("Failed to parse number: %s", m.Err.Error())
	default:
		return ""
	}
}
