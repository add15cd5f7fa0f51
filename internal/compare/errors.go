package compare

import (
	"errors"
	"fmt"
)

// InvariantError is the panic value raised when a query violates the
// structural invariants of its variant, for example a file-precise query
// that carries no test path. Such queries cannot come out of package query,
// so the error marks a programming mistake rather than bad input.
type InvariantError struct {
	Level   string
	Query   string
	Message string
}

func (e *InvariantError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("query invariant violated at %s level: %s (query=%s)", e.Level, e.Message, e.Query)
	}
	if e.Level != "" {
		return fmt.Sprintf("query invariant violated at %s level: %s", e.Level, e.Message)
	}
	return "query invariant violated: " + e.Message
}

// IsInvariantError returns true if err is or wraps an *InvariantError.
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
