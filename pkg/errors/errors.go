package errors

import "fmt"

// Common error types.
var (
	// Declaration file errors.
	ErrEmptyDeclarationPath = fmt.Errorf("declaration file path cannot be empty")
	ErrDeclarationParse     = fmt.Errorf("failed to parse declaration file")
	ErrDeclarationValidate  = fmt.Errorf("invalid declaration")

	// Snapshot errors.
	ErrSnapshotMissing = fmt.Errorf("snapshot file does not exist")
	ErrSnapshotParse   = fmt.Errorf("failed to parse snapshot file")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
