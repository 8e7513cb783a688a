package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every ParseError.
	ErrParse = errors.New("schema: source could not be parsed")
	// ErrNoSchemaFound is returned when a valid file declares no schema root.
	ErrNoSchemaFound = errors.New("schema: no schema found")
)

// ParseError reports the first syntax error found in a source file.
type ParseError struct {
	Location string
	Line     int
	Column   int
	Err      error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("schema: parse %s:%d:%d: invalid syntax", e.Location, e.Line, e.Column)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
