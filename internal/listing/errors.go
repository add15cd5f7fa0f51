package listing

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes for listing failures.
const (
	ErrCodeRead      = "E_LISTING_READ"
	ErrCodeFormat    = "E_LISTING_FORMAT"
	ErrCodeDecode    = "E_LISTING_DECODE"
	ErrCodeInvalid   = "E_LISTING_INVALID"
	ErrCodeBadCase   = "E_LISTING_CASE"
	ErrCodeDuplicate = "E_LISTING_DUPLICATE"
)

// LoadError is returned for every listing failure.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is or wraps a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// ErrorCode returns the code of the *LoadError in err's chain, or "".
func ErrorCode(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
