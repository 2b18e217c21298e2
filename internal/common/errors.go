// Package common defines the sentinel errors and error wrappers shared by all
// layers of the chat board. Callers match sentinels with errors.Is; wrapped
// causes stay reachable through errors.Unwrap so an outer logger can print the
// full chain.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrLoginFailed = errors.New("login failed")
	ErrInternal    = errors.New("internal error")

	// Authorization errors (authenticated but not permitted).
	ErrForbidden = errors.New("forbidden")

	// Session credential errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// StorageError wraps a failure raised below the persistence gateway. It keeps
// the operation name and the offending key for diagnostics while hiding
// driver-native detail from callers, which only ever match the wrapped cause.
type StorageError struct {
	Op  string // gateway operation, e.g. "msgs.Delete"
	Key any    // id, username or other input the operation was given
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s (%v): %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err with the gateway operation and input that failed.
func NewStorageError(op string, key any, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}
