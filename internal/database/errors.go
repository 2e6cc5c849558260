package database

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable marks any failed persistence call. Callers keep
// their in-memory state on failure; memory and storage re-converge on
// the next full load.
var ErrStorageUnavailable = errors.New("storage unavailable")

// storageError wraps a driver error so callers can match on
// ErrStorageUnavailable while keeping the underlying cause.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}
