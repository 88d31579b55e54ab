package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("required fields missing")

// ValidationError lists the empty required fields.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// TransmissionError is any failure to deliver a validated draft:
// network errors and non-2xx responses alike.
type TransmissionError struct {
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("contact endpoint returned %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("contact endpoint unreachable: %v", e.Err)
}

func (e *TransmissionError) Unwrap() error { return e.Err }
