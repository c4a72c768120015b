package memfs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the path has no usable entry in the store.
	// Reads additionally treat a directory entry as not found, since
	// directories have no content.
	ErrNotFound = errors.New("path not found")
)

// Error wraps store errors with context about the operation and affected
// path. The underlying sentinel is reachable through errors.Is.
type Error struct {
	Op   string // Operation that failed (e.g., "read", "unlink")
	Path string // Affected path, already normalized
	Err  error  // Underlying error
}

// Error implements the error interface, providing a formatted error message
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("operation %s on %s failed: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements error unwrapping for the errors.Is/As functions
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given operation, path, and
// underlying error.
func NewError(op string, path string, err error) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// Common operation names for consistent logging and error reporting
const (
	OpRead   = "read"   // Reading a file's content
	OpUnlink = "unlink" // Removing a file
	OpStat   = "stat"   // Looking up an entry
	OpRename = "rename" // Renaming/moving an entry
)
