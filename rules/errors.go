package rules

import "fmt"

// InvalidPatternError is returned by NewRule when a pattern cannot be
// compiled. It is the only error the engine produces; every other operation
// accepts any input and succeeds.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

// Error describes the offending pattern and the underlying compile error.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying regexp compile error.
func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
