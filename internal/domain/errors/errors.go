package errors

import (
	"errors"
	"fmt"
)

// API error codes returned in the error envelope.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidStatus   = "INVALID_STATUS"
	CodeInternal        = "INTERNAL_ERROR"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidStatus  = errors.New("operation not allowed in current status")
	ErrInvalidRequest = errors.New("request body is required")
)

// DomainError carries an API error code alongside the underlying sentinel.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFound creates a NOT_FOUND error for a missing resource.
// The message format ("Order order_42 not found") is part of the API contract.
func NewNotFound(resource, id string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Err:     ErrNotFound,
	}
}

// NewInvalidStatus creates an INVALID_STATUS error for an operation rejected
// by the entity's state machine.
func NewInvalidStatus(message string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidStatus,
		Message: message,
		Err:     ErrInvalidStatus,
	}
}

// NewInvalidRequest creates an INVALID_REQUEST error for a malformed or
// absent request body.
func NewInvalidRequest(message string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidRequest,
		Message: message,
		Err:     ErrInvalidRequest,
	}
}

// ValidationError represents a semantically invalid field in a well-formed request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
