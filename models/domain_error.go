package models

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type ErrorCode string

const (
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeConflict           ErrorCode = "CONFLICT"
	ErrCodePreconditionFailed ErrorCode = "PRECONDITION_FAILED"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DomainError carries the error taxonomy over the service boundary.
// The controllers render it into the response envelope, everything else
// is reported as a generic internal error.
type DomainError struct {
	Code       ErrorCode     `json:"code"`
	Message    string        `json:"message"`
	StatusCode int           `json:"-"`
	Details    []FieldDetail `json:"details,omitempty"`
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...FieldDetail) *DomainError {
	return &DomainError{
		Code:       ErrCodeValidationFailed,
		Message:    message,
		StatusCode: fiber.StatusUnprocessableEntity,
		Details:    details,
	}
}

func NewBadRequestError(message string, details ...FieldDetail) *DomainError {
	return &DomainError{
		Code:       ErrCodeValidationFailed,
		Message:    message,
		StatusCode: fiber.StatusBadRequest,
		Details:    details,
	}
}

func NewNotFoundError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeNotFound,
		Message:    message,
		StatusCode: fiber.StatusNotFound,
	}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeConflict,
		Message:    message,
		StatusCode: fiber.StatusConflict,
	}
}

func NewPreconditionError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodePreconditionFailed,
		Message:    message,
		StatusCode: fiber.StatusPreconditionFailed,
	}
}

func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}
