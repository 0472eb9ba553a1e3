package journal

import "fmt"

// Machine-checkable validation failure codes. Each code is attributable
// to exactly one field, so callers can render field-specific messages
// without string matching.
const (
	CodeMissingField      = "missing_field"
	CodeInvalidEnum       = "invalid_enum"
	CodeInvalidNumber     = "invalid_number"
	CodeInvalidDate       = "invalid_date"
	CodeOutOfRange        = "out_of_range"
	CodeDirectionMismatch = "direction_mismatch"
)

// ValidationError reports a single failed business-rule check. It is
// always recoverable: a manual entry is rejected, an import row is
// skipped, never does it abort a batch.
type ValidationError struct {
	Field  string `json:"field"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// StorageError wraps a failure of the persistence collaborator. It is
// fatal to the triggering operation and must be surfaced unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
