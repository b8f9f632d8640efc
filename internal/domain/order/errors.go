package order

import "errors"

// ErrNotFound reports a lookup miss. Store adapters return it when the key is
// absent so callers can tell a miss from a backend failure.
var ErrNotFound = errors.New("order not found")

// ValidationError reports bad caller input. It never reaches a backend and the
// caller can recover by resubmitting. Reason is shown to the caller verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// PersistenceError reports a failed store write or read.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "order store: " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError reports a publish failure after the order was durably
// stored. The order id remains valid and retrievable.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string { return "order notification: " + e.Err.Error() }

func (e *NotificationError) Unwrap() error { return e.Err }
