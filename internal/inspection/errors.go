// internal/inspection/errors.go
package inspection

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed caller input, such as an empty email.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks an absent user, checklist or inspection.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a failed password check.
	ErrUnauthorized = errors.New("unauthorized")
)

// PersistenceError wraps a rejected insert or update of an inspection row.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("persistence failed: %s", e.Op)
	}
	return fmt.Sprintf("persistence failed: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// UploadError wraps a failed photo upload. Callers treat it as "no photo
// added" for that file; it never aborts the rest of a save.
type UploadError struct {
	Object string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %s: %v", e.Object, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
