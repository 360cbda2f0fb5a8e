package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTypeMismatch is matched by every *TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnexpectedAck is returned when an acknowledgement is anything but "ok".
	ErrUnexpectedAck = errors.New("unexpected acknowledgement")
	// ErrMissingField is matched by every *MissingFieldError.
	ErrMissingField = errors.New("missing field")
)

// TypeMismatchError reports a wire value whose JSON kind is none of the
// accepted alternatives.
type TypeMismatchError struct {
	Value    string
	Expected []string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: got %s, expected %s", e.Value, strings.Join(e.Expected, " or "))
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// MissingFieldError reports a required member absent from a payload object.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
