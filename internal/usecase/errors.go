package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

var (
	ErrJobNotFound       = fmt.Errorf("job %w", ErrNotFound)
	ErrEmployerNotFound  = fmt.Errorf("employer %w", ErrNotFound)
	ErrEmployerNameTaken = fmt.Errorf("employer name %w", ErrConflict)
)

// ValidationError is an ErrInvalidInput whose message is safe to show to the
// client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidationMessage returns the client-facing message of a validation error,
// or "" when err does not carry one.
func ValidationMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return ""
}

func internal(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
