package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdiddy/urban-define/internal/lookup"
	"github.com/pdiddy/urban-define/internal/render"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
)

// usageError is a command-line mistake: bad flag, bad value, wrong number
// of arguments.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }
func (e *usageError) ExitCode() int { return exitCodeFailure }

// exitCode maps err to a process exit code. Errors that carry their own
// code keep it; everything else is a failure.
func exitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return exitCodeFailure
}

// reportError prints the one-line message for err in red. Usage errors get
// a pointer to --help; the underlying cause goes to the debug log.
func reportError(w io.Writer, err error) {
	var ue *usageError
	if errors.As(err, &ue) {
		render.Error(w, "Error: "+ue.msg)
		fmt.Fprintln(w, "Try 'urban --help' for help.")
		return
	}
	slog.Debug("lookup failed", slog.String("error", err.Error()))
	render.Error(w, lookup.UserMessage(err))
}
