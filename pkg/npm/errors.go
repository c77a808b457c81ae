package npm

import (
	"errors"
	"fmt"
)

// ErrCommandNotFound is returned when the underlying package manager
// binary is not available at all.
var ErrCommandNotFound = errors.New("npm binary could not be found")

// ErrReadOnly is returned by managers that can answer listing queries
// but cannot mutate anything.
var ErrReadOnly = errors.New("manager is read-only")

// ExecutionError reports that the package manager ran but failed. Output
// carries the captured stderr/stdout when available.
type ExecutionError struct {
	Op     string // list, install or uninstall
	Output string
	Err    error
}

func (e *ExecutionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("npm %s failed: %v: %s", e.Op, e.Err, e.Output)
	}
	return fmt.Sprintf("npm %s failed: %v", e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
