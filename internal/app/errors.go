package app

import (
	"errors"
	"fmt"

	"github.com/mmrzaf/lx/internal/options"
)

// Exit codes. Misfires carry their own code; these cover the rest.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitHelp    = options.ExitHelp
	ExitMisfire = options.ExitMisfire
)

// Error wraps an error with an exit code.
type Error struct {
	code     int
	err      error
	reported bool
}

// Error returns a printable message.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap exposes the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// ExitCode returns the process exit code.
func (e *Error) ExitCode() int { return e.code }

// Reported reports whether the failure was already shown to the user.
func (e *Error) Reported() bool { return e.reported }

// Wrap wraps err with the given exit code.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, err: err}
}

// Reported wraps err with the given exit code and marks it as already
// shown, so callers only set the exit status.
func Reported(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, err: err, reported: true}
}

// Wrapf wraps err with formatted context.
func Wrapf(code int, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, err: fmt.Errorf(format+": %w", append(args, err)...)}
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var m options.Misfire
	if errors.As(err, &m) {
		return m.ExitCode()
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.ExitCode()
	}
	return ExitRuntime
}
