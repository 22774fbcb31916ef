package domain

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenInvalid           = errors.New("token invalid")
	ErrInvalidLocation        = errors.New("invalid location")
	ErrInvalidHeading         = errors.New("invalid heading")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidTimezone        = errors.New("invalid timezone")
	ErrMalformedTime          = errors.New("malformed time")
	ErrEmptySchedule          = errors.New("empty schedule")
	ErrInvalidSchedule        = errors.New("invalid schedule")
	ErrScheduleNotFound       = errors.New("schedule not found")
	ErrCalculationUnavailable = errors.New("prayer times unavailable for location and date")
	ErrUnsupportedFormat      = errors.New("unsupported format")
)
