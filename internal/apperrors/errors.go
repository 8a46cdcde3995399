package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups and routes that matched nothing.
var ErrNotFound = errors.New("not found")

// ValidationError reports caller input that fails a precondition. It is
// raised before any storage mutation, so its message is safe to return
// to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps any failure coming out of the backing store. The
// wrapped error carries driver detail and must only ever be logged,
// never returned to a caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
