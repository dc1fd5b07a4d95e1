package errors

import (
	"errors"
	"fmt"
)

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_ERROR"
)

var (
	ErrInvalidTokenFormat = errors.New("Invalid Token Format")
	ErrTokenExpired       = errors.New("Token Expired")
	ErrInvalidToken       = errors.New("Invalid Token")
	ErrAccessDenied       = errors.New("You don't have access privilages")

	ErrInvalidInput     = errors.New("invalid input data")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// AppError is the error shape every usecase returns to the HTTP layer.
// Fields carries per-field validation messages keyed by JSON field name.
type AppError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string, fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Fields:  fields,
	}
}

func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(CodeNotFound, message, err)
}

func NewUnauthenticatedError(err error) *AppError {
	return NewAppError(CodeUnauthenticated, err.Error(), err)
}

func NewForbiddenError() *AppError {
	return NewAppError(CodeForbidden, ErrAccessDenied.Error(), ErrAccessDenied)
}
