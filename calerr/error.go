// Package calerr models the error surface described by the generator's
// design: input errors the caller can fix, and internal errors that
// indicate a bug in the builder.
package calerr

import (
	"encoding/json"
	"fmt"
)

// InputError represents a caller-fixable problem with the arguments
// passed to the generator: an invalid year, a holiday outside the target
// year, a duplicate holiday, an oversized holiday block, or a
// Sunday-Monday holiday pair.
type InputError struct {
	message string
}

// NewInputError creates an InputError from a formatted message.
func NewInputError(format string, a ...interface{}) *InputError {
	return &InputError{message: fmt.Sprintf(format, a...)}
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	return e.message
}

// MarshalJSON renders the InputError as its message string.
func (e InputError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.message)
}

// InternalError represents a bug: the builder produced a state the
// decision policy or rest placement could not satisfy. It should never
// fire on well-formed input.
type InternalError struct {
	message string
}

// NewInternalError creates an InternalError from a formatted message.
func NewInternalError(format string, a ...interface{}) *InternalError {
	return &InternalError{message: fmt.Sprintf(format, a...)}
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	if e == nil {
		return ""
	}
	return e.message
}

// MarshalJSON renders the InternalError as its message string.
func (e InternalError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.message)
}
