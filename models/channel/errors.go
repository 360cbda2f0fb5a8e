package channel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is matched by every *InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid channel format")

// InvalidFormatError names the rejected input and the shapes that would have
// been accepted.
type InvalidFormatError struct {
	Input    string
	Patterns []string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid channel format %q: expected %s", e.Input, strings.Join(e.Patterns, " or "))
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
