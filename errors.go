package jsondoc

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// ErrParse reports input text that is not valid JSON.
	ErrParse = errors.New("invalid JSON format")
	// ErrNotFound reports a file or directory path that does not exist or is the wrong kind.
	ErrNotFound = errors.New("path not found")
	// ErrTypeMismatch reports a traversal that reached a scalar where a container was required.
	ErrTypeMismatch = errors.New("type mismatch")

	ErrIndexOutOfRange = errors.New("list index out of range")
	ErrSizeLimit       = errors.New("size limit exceeded")
	ErrDepthLimit      = errors.New("depth limit exceeded")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrEncode          = errors.New("encoding failed")
)

// DocError represents a document processing error with essential context
type DocError struct {
	Op      string `json:"op"`      // Operation that failed
	Path    string `json:"path"`    // Address or file path where error occurred
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *DocError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("jsondoc %s failed at '%s': %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("jsondoc %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *DocError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is
func (e *DocError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*DocError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}
	return errors.Is(e.Err, target)
}

func newOperationError(op, message string, err error) error {
	return &DocError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}

func newPathError(op, path, message string, err error) error {
	return &DocError{
		Op:      op,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

func newSizeLimitError(op, path string, actual, limit int64) error {
	return &DocError{
		Op:      op,
		Path:    path,
		Message: fmt.Sprintf("size %d exceeds limit %d", actual, limit),
		Err:     ErrSizeLimit,
	}
}

func newDepthLimitError(op string, limit int) error {
	return &DocError{
		Op:      op,
		Message: fmt.Sprintf("nesting exceeds limit %d", limit),
		Err:     ErrDepthLimit,
	}
}

var sentinels = []error{
	ErrParse, ErrNotFound, ErrTypeMismatch, ErrIndexOutOfRange,
	ErrSizeLimit, ErrDepthLimit, ErrInvalidConfig, ErrEncode,
}

// errorType extracts the sentinel message used as a log attribute.
func errorType(err error) string {
	var docErr *DocError
	if !errors.As(err, &docErr) || docErr.Err == nil {
		return "unknown"
	}
	for _, sentinel := range sentinels {
		if errors.Is(docErr.Err, sentinel) {
			return sentinel.Error()
		}
	}
	return docErr.Err.Error()
}
