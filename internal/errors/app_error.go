package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	// Fields maps a form field to the reason it was rejected.
	Fields map[string]string
	Err    error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

func (e *AppError) WithField(field, reason string) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}

	e.Fields[field] = reason

	return e
}

// Retryable reports whether repeating the same request may succeed.
func (e *AppError) Retryable() bool {
	return e.Code == ErrCodeServiceUnavailable || e.Code == ErrCodeTooManyRequests
}

const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeStorageError       = "STORAGE_ERROR"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeStateCorrupt       = "STATE_CORRUPT"
	ErrCodeInvalidTransition  = "INVALID_TRANSITION"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

// FieldsError builds a validation error carrying one reason per field.
func FieldsError(fields map[string]string) *AppError {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	appErr := ValidationError(fmt.Sprintf("Invalid fields: %s", strings.Join(names, ", ")))
	appErr.Fields = fields

	return appErr
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func StorageError(message string) *AppError {
	return NewAppError(ErrCodeStorageError, message, http.StatusInternalServerError)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

func EmptyCartError() *AppError {
	return NewAppError(ErrCodeEmptyCart, "Your cart is empty", http.StatusBadRequest)
}

func SimulatedServiceError(operation string) *AppError {
	return NewAppError(ErrCodeServiceUnavailable, fmt.Sprintf("%s failed, please try again", operation), http.StatusServiceUnavailable)
}

// PersistedStateCorruptError is recovered by the caller and never written to a response.
func PersistedStateCorruptError(key string) *AppError {
	return NewAppError(ErrCodeStateCorrupt, fmt.Sprintf("persisted state %q is corrupt", key), http.StatusInternalServerError)
}

func InvalidTransitionError(message string) *AppError {
	return NewAppError(ErrCodeInvalidTransition, message, http.StatusConflict)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason)).WithField(field, reason)
}
