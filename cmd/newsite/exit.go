package main

import (
	"errors"

	"github.com/raphi011/newsite/internal/scaffold"
	"github.com/raphi011/newsite/internal/ui/prompt"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1
	// exitAborted follows the shell convention for SIGINT (128+2).
	exitAborted = 130
)

// exitCode maps a run error to the process exit status.
func exitCode(err error) int {
	var scriptErr *scaffold.ExitError
	switch {
	case err == nil, errors.Is(err, errCancelled):
		return exitOK
	case errors.Is(err, prompt.ErrAborted):
		return exitAborted
	case errors.As(err, &scriptErr):
		return scriptErr.Code
	default:
		return exitFailure
	}
}
