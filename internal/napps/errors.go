package napps

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNApp is matched by every *InvalidNAppError.
	ErrInvalidNApp = errors.New("invalid NApp name")

	// ErrNotInstalled is returned when enabling a NApp missing from the install registry.
	ErrNotInstalled = errors.New("NApp is not installed")

	// ErrAlreadyEnabled is returned when enabling a NApp that is already enabled.
	ErrAlreadyEnabled = errors.New("NApp is already enabled")

	// ErrNotEnabled is returned when disabling a NApp that is not enabled.
	ErrNotEnabled = errors.New("NApp is not enabled")
)

// InvalidNAppError reports a raw NApp reference that is not of the form author/name.
type InvalidNAppError struct {
	Raw string
}

func (e *InvalidNAppError) Error() string {
	return fmt.Sprintf("\"%s\" is not a valid NApp name. A NApp is of the form author/napp_name.", e.Raw)
}

func (e *InvalidNAppError) Is(target error) bool {
	return target == ErrInvalidNApp
}
