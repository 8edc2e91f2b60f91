package repos

import "errors"

// ErrNotFound is returned when a lookup matches no row or a mutation
// affects zero rows.
var ErrNotFound = errors.New("user not found")

// StorageError wraps any driver-level failure. Its message is the driver's
// message verbatim.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
