package options

import (
	"errors"
	"strconv"
)

// Misfire is anything that happens instead of listing files: a bad command
// line, or a request for help or the version. Exactly one describes a run.
//
// The set of variants is closed; see InvalidOptions, Help, Version,
// Conflict, Useless, Useless2 and FailedParse.
type Misfire interface {
	error
	// ExitCode is the process exit status this misfire signifies.
	ExitCode() int
	misfire()
}

// Exit statuses for misfires.
const (
	ExitHelp    = 2
	ExitMisfire = 3
)

// InvalidOptions means the tokenizer rejected the arguments.
type InvalidOptions struct {
	Err error
}

// Help is a request for the usage text. Not strictly an error.
type Help struct {
	Text string
}

// Version is a request for the version line.
type Version struct{}

// Conflict means two mutually exclusive options were both given.
type Conflict struct {
	A, B string
}

// Useless means Option does nothing when Other is absent (Given false) or
// present (Given true).
type Useless struct {
	Option string
	Given  bool
	Other  string
}

// Useless2 means Option does nothing unless A or B is present.
type Useless2 struct {
	Option string
	A, B   string
}

// FailedParse means a numeric option's value is not a number.
type FailedParse struct {
	Err *strconv.NumError
}

func (InvalidOptions) misfire() {}
func (Help) misfire()           {}
func (Version) misfire()        {}
func (Conflict) misfire()       {}
func (Useless) misfire()        {}
func (Useless2) misfire()       {}
func (FailedParse) misfire()    {}

func (Help) ExitCode() int           { return ExitHelp }
func (InvalidOptions) ExitCode() int { return ExitMisfire }
func (Version) ExitCode() int        { return ExitMisfire }
func (Conflict) ExitCode() int       { return ExitMisfire }
func (Useless) ExitCode() int        { return ExitMisfire }
func (Useless2) ExitCode() int       { return ExitMisfire }
func (FailedParse) ExitCode() int    { return ExitMisfire }

func (m InvalidOptions) Error() string { return Text(m) }
func (m Help) Error() string           { return Text(m) }
func (m Version) Error() string        { return Text(m) }
func (m Conflict) Error() string       { return Text(m) }
func (m Useless) Error() string        { return Text(m) }
func (m Useless2) Error() string       { return Text(m) }
func (m FailedParse) Error() string    { return Text(m) }

func (m InvalidOptions) Unwrap() error { return m.Err }

func (m FailedParse) Unwrap() error {
	if m.Err == nil {
		return nil
	}
	return m.Err
}

// BadArgument is the misfire for an option given a value it does not
// accept. It travels through the InvalidOptions channel; the message is
// "--<option> <explanation>".
func BadArgument(option, explanation string) Misfire {
	return InvalidOptions{Err: errors.New("--" + option + " " + explanation)}
}

// Equal reports whether a and b are the same variant with the same text.
func Equal(a, b Misfire) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Kind(a) == Kind(b) && Text(a) == Text(b)
}

// Kind names the variant, for logs.
func Kind(m Misfire) string {
	switch m.(type) {
	case InvalidOptions:
		return "invalid_options"
	case Help:
		return "help"
	case Version:
		return "version"
	case Conflict:
		return "conflict"
	case Useless:
		return "useless"
	case Useless2:
		return "useless2"
	case FailedParse:
		return "failed_parse"
	default:
		return "unknown"
	}
}
