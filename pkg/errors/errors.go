package errors

import "fmt"

// ErrNotFound indicates a referenced entity does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates a request failed validation before any work began
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ErrUnauthorized indicates the caller is not authorized
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrIntegration indicates a downstream platform or service call failed.
// It is reported back as a best-effort error payload, never as a panic.
type ErrIntegration struct {
	Service string
	Message string
}

func (e *ErrIntegration) Error() string {
	return fmt.Sprintf("%s integration error: %s", e.Service, e.Message)
}
