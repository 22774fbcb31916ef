package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
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

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// domainErrors maps sentinel errors to the code and status clients see.
// The message shown is the full error text, which carries the offending value.
var domainErrors = []struct {
	target error
	code   string
	status int
}{
	{domain.ErrInvalidCredentials, "INVALID_CREDENTIALS", http.StatusUnauthorized},
	{domain.ErrUnauthorized, "UNAUTHORIZED", http.StatusUnauthorized},
	{domain.ErrTokenExpired, "TOKEN_EXPIRED", http.StatusUnauthorized},
	{domain.ErrTokenInvalid, "TOKEN_INVALID", http.StatusUnauthorized},
	{domain.ErrInvalidLocation, "INVALID_LOCATION", http.StatusBadRequest},
	{domain.ErrInvalidHeading, "INVALID_HEADING", http.StatusBadRequest},
	{domain.ErrInvalidDate, "INVALID_DATE", http.StatusBadRequest},
	{domain.ErrInvalidTimezone, "INVALID_TIMEZONE", http.StatusBadRequest},
	{domain.ErrMalformedTime, "MALFORMED_TIME", http.StatusBadRequest},
	{domain.ErrInvalidSchedule, "INVALID_SCHEDULE", http.StatusBadRequest},
	{domain.ErrUnsupportedFormat, "UNSUPPORTED_FORMAT", http.StatusBadRequest},
	{domain.ErrScheduleNotFound, "NOT_FOUND", http.StatusNotFound},
	{domain.ErrEmptySchedule, "EMPTY_SCHEDULE", http.StatusNotFound},
	{domain.ErrCalculationUnavailable, "CALCULATION_UNAVAILABLE", http.StatusUnprocessableEntity},
}

// FromError converts err into an AppError, falling back to Internal for
// anything that is neither an AppError nor a known domain error.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, d := range domainErrors {
		if errors.Is(err, d.target) {
			return &AppError{Code: d.code, Message: err.Error(), StatusCode: d.status, Err: err}
		}
	}
	return Internal(err)
}
