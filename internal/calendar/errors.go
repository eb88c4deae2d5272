package calendar

import "errors"

var (
	ErrMissingDate           = errors.New("date is required")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime           = errors.New("invalid time, expected HH:MM")
	ErrMissingSummary        = errors.New("summary is required")
	ErrMissingEventID        = errors.New("event id is required")
	ErrInvalidEventRange     = errors.New("event must end after it starts")
	ErrCalendarNotConfigured = errors.New("external calendar is not configured")
)
