package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// DuplicateKeyError reports a unique-constraint violation on insert
// (duplicate employee_id or email). The native driver code and message
// are carried so handlers can pass them through to clients.
type DuplicateKeyError struct {
	Code    string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Message)
}

// StorageError reports any other database failure, carrying the native
// error code and message when the driver provides them.
type StorageError struct {
	Code    string
	Message string
}

func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("storage error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("storage error: %s", e.Message)
}

// classifyError maps a driver error onto the repository error taxonomy.
// PostgreSQL signals unique-constraint violations with SQLSTATE 23505.
func classifyError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" {
			return &DuplicateKeyError{Code: string(pqErr.Code), Message: pqErr.Message}
		}
		return &StorageError{Code: string(pqErr.Code), Message: pqErr.Message}
	}
	return &StorageError{Message: err.Error()}
}
