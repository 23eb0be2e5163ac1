package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenExpired        = errors.New("token expired")
	ErrDomainClaimed       = errors.New("domain already claimed by another account")
	ErrAccountClaimed      = errors.New("platform account already linked to another profile")
	ErrUnsupportedProvider = errors.New("unsupported platform provider")
	ErrUpstreamFailure     = errors.New("upstream service failure")
)

// Machine-readable error codes surfaced to clients
const (
	CodeNotFound            = "ERR_NOT_FOUND"
	CodeConflict            = "ERR_CONFLICT"
	CodeValidation          = "ERR_VALIDATION"
	CodeUnauthorized        = "ERR_UNAUTHORIZED"
	CodeForbidden           = "ERR_FORBIDDEN"
	CodeInvalidCredentials  = "ERR_INVALID_CREDENTIALS"
	CodeUpstreamFailure     = "ERR_UPSTREAM_FAILURE"
	CodeInternal            = "ERR_INTERNAL"
	CodeUnsupportedProvider = "ERR_UNSUPPORTED_PROVIDER"
)

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidation, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

func UpstreamFailure(message string, err error) *AppError {
	return NewAppError(http.StatusBadGateway, CodeUpstreamFailure, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: message,
		Err:     err,
	}
}
