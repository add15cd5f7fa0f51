package query

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes query errors.
type ErrorCode string

const (
	// ErrCodeSyntax indicates the text is not shaped like a query.
	ErrCodeSyntax ErrorCode = "SYNTAX"

	// ErrCodeWildcard indicates a misplaced or missing wildcard.
	ErrCodeWildcard ErrorCode = "WILDCARD"

	// ErrCodeEmptyPath indicates a path that must not be empty is empty.
	ErrCodeEmptyPath ErrorCode = "EMPTY_PATH"

	// ErrCodeInvalidPart indicates a suite name or path segment contains
	// a reserved character or is blank.
	ErrCodeInvalidPart ErrorCode = "INVALID_PART"

	// ErrCodeParam indicates a malformed, duplicate or invalid param.
	ErrCodeParam ErrorCode = "PARAM"
)

// ParseError reports a malformed query.
// Input is the query text; it is empty for errors from constructors.
type ParseError struct {
	Code    ErrorCode
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (query=%q)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsParseError returns true if err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func newError(code ErrorCode, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}
