// Package version holds build metadata. Both values are normally set with
//
//	go build -ldflags "-X github.com/mmrzaf/lx/internal/version.Version=v0.3.0 -X github.com/mmrzaf/lx/internal/version.Commit=abc1234"
package version

import (
	"runtime/debug"
	"strings"
)

// Program is the binary name used in version output.
const Program = "lx"

var (
	// Version is the release version.
	Version = "dev"
	// Commit is the short VCS revision the binary was built from.
	Commit = ""
)

// String renders "<program> <version> <commit>".
func String() string {
	return strings.TrimSpace(Program + " " + Version + " " + commit())
}

func commit() string {
	if Commit != "" {
		return Commit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 7 {
				return s.Value[:7]
			}
			return s.Value
		}
	}
	return "unknown"
}
