package schedule

import "errors"

// Build failures. Callers match them with errors.Is; the wrapped message
// names the offending employee, group or value.
var (
	ErrConfiguration = errors.New("invalid schedule configuration")
	ErrReference     = errors.New("unknown employee")
	ErrRange         = errors.New("value out of range")
)
