package service

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a lookup for an assessment id or contact with no
// stored record. Handlers map it to a 404.
var ErrNotFound = errors.New("assessment not found")

// ValidationError reports which submission constraint failed. It is never
// retried automatically; the caller must correct the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DeliveryError wraps an email dispatch failure. It is non-fatal: the
// assessment stays valid and retrievable regardless of delivery outcome.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "report delivery failed: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error { return e.Err }
