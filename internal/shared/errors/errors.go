// Package errors provides application-level error types and utilities.
// Every failure surfaced by the complaint core is an *AppError carrying one of
// the ErrorType values below together with the HTTP status it maps to.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation_error"
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeConflict           ErrorType = "conflict"
	ErrorTypeUnauthorized       ErrorType = "unauthorized"
	ErrorTypeForbidden          ErrorType = "forbidden"
	ErrorTypeInvalidRole        ErrorType = "invalid_role"
	ErrorTypeInvalidTransition  ErrorType = "invalid_transition"
	ErrorTypeTerminalState      ErrorType = "terminal_state"
	ErrorTypePersistenceFailure ErrorType = "persistence_failure"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error. Conflicts are retryable with fresh state.
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInvalidRoleError reports a user whose role cannot fill the requested position.
func NewInvalidRoleError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidRole, http.StatusUnprocessableEntity, message, details)
}

// NewInvalidTransitionError reports a status change the state machine does not allow.
func NewInvalidTransitionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidTransition, http.StatusUnprocessableEntity, message, details)
}

// NewTerminalStateError reports an operation on a closed or withdrawn complaint.
func NewTerminalStateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTerminalState, http.StatusUnprocessableEntity, message, details)
}

// NewPersistenceError wraps a storage failure. Details are never exposed to API clients.
func NewPersistenceError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePersistenceFailure, http.StatusInternalServerError, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

func IsForbiddenError(err error) bool {
	return IsType(err, ErrorTypeForbidden)
}

func IsInvalidRoleError(err error) bool {
	return IsType(err, ErrorTypeInvalidRole)
}

func IsInvalidTransitionError(err error) bool {
	return IsType(err, ErrorTypeInvalidTransition)
}

func IsTerminalStateError(err error) bool {
	return IsType(err, ErrorTypeTerminalState)
}

func IsPersistenceError(err error) bool {
	return IsType(err, ErrorTypePersistenceFailure)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}
