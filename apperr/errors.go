// Package apperr defines the error taxonomy shared by the service layer.
// Handlers translate these into HTTP status codes in one place.
package apperr

import "fmt"

// ValidationError reports malformed or out-of-policy input (HTTP 400).
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// AuthError reports missing or invalid credentials (HTTP 401).
type AuthError struct {
	Message string
}

func (e AuthError) Error() string { return e.Message }

// NotFoundError reports a dangling reference or missing resource (HTTP 404).
type NotFoundError struct {
	Resource string
	Ref      string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Ref)
}

// ConflictError reports a business-rule conflict such as exhausted slot
// capacity at commit time (HTTP 409).
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// InvalidTransitionError reports an illegal booking state transition (HTTP 409).
type InvalidTransitionError struct {
	From string
	To   string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

// PersistenceError wraps a storage or infrastructure failure (HTTP 500).
type PersistenceError struct {
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %v", e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }
