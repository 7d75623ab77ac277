package darkstar

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("darkstar: not found")
	ErrValidation         = errors.New("darkstar: invalid input")
	ErrInvalidPassword    = errors.New("darkstar: invalid password")
	ErrInvalidCredentials = errors.New("darkstar: invalid account name or password")
	ErrBanned             = errors.New("darkstar: account is banned")
	ErrJailed             = errors.New("darkstar: character is in jail")
)

// ComposeError is returned by every multi-step lookup. The message is
// deliberately generic; Unwrap exposes the failing step's cause.
type ComposeError struct {
	What string
	Err  error
}

func (e *ComposeError) Error() string { return "failed to obtain " + e.What }

func (e *ComposeError) Unwrap() error { return e.Err }

func composeErr(what string, err error) error {
	return &ComposeError{What: what, Err: err}
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// runSteps runs each step in order and stops at the first error.
func runSteps(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
