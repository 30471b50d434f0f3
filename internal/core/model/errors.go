package model

import "fmt"

// ValidationError reports a rejected input value: a malformed date, a
// negative amount, a non-positive goal, or an out-of-range month.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
