package remote

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStep   = errors.New("step must be a positive number")
	ErrNilReceiver   = errors.New("receiver is required")
	ErrNoCommand     = errors.New("no command set")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// ValidationError is returned by command constructors given bad arguments.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsEmptyHistory reports whether err only means there was nothing to undo or
// redo. Such calls leave all state unchanged.
func IsEmptyHistory(err error) bool {
	return errors.Is(err, ErrNothingToUndo) || errors.Is(err, ErrNothingToRedo)
}
