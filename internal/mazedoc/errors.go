package mazedoc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeError reports malformed map document JSON together with the byte
// offset encoding/json detected the problem at, when one is available.
type DecodeError struct {
	Message string
	Offset  int64
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("mazedoc: decode: %s (offset %d)", e.Message, e.Offset)
	}
	return fmt.Sprintf("mazedoc: decode: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrDecode is the sentinel every *DecodeError matches via errors.Is.
var ErrDecode = errors.New("mazedoc: malformed map document")

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// wrapDecodeError converts a raw encoding/json error into a *DecodeError,
// preserving the position encoding/json reports for syntax and type
// mismatches.
func wrapDecodeError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DecodeError{Message: syntaxErr.Error(), Offset: syntaxErr.Offset, Err: err}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Message: typeErr.Error(), Offset: typeErr.Offset, Err: err}
	}

	return &DecodeError{Message: err.Error(), Err: err}
}
