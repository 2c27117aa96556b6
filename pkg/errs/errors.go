// Package errs defines the error taxonomy shared by the ledgers and the
// import/export layer.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks across package boundaries.
var (
	ErrValidation = errors.New("validation failed")
	ErrIndex      = errors.New("no such record")
	ErrStorage    = errors.New("storage failure")
	ErrFormat     = errors.New("malformed payload")
)

// ValidationError reports bad user input. Ledgers return it before any
// store write happens, so state is untouched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IndexError reports an operation addressed to a record that does not
// exist.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (have %d)", e.Index, e.Length)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}

// StorageError wraps a persistence failure. The underlying error is never
// swallowed; it propagates unchanged through Unwrap.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// FormatError reports a malformed import payload.
type FormatError struct {
	Field   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
