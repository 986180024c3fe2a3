package password

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength matches every *InvalidLengthError via errors.Is.
	ErrInvalidLength = errors.New("invalid password length")
	// ErrComposition is returned by Validate.
	ErrComposition = errors.New("password composition")
)

// InvalidLengthError reports a requested length below the minimum.
type InvalidLengthError struct {
	Length int
	Min    int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("password must be at least %d characters long", e.Min)
}

func (e *InvalidLengthError) Is(target error) bool { return target == ErrInvalidLength }
