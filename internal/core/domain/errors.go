package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record or a postal code does not exist
var ErrNotFound = errors.New("not found")

// StorageError wraps a fault raised by the underlying database
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// UpstreamError wraps a transport or protocol failure of the address lookup provider
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("address lookup failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(err error) *UpstreamError {
	return &UpstreamError{Err: err}
}
