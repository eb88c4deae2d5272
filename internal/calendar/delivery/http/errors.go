package http

import (
	"errors"
	"net/http"

	"lifeos/internal/calendar"
	pkgErrors "lifeos/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates calendar errors into HTTP errors from pkg/errors.
// Unknown errors are returned as-is and rendered as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrMissingDate),
		errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidTime),
		errors.Is(err, calendar.ErrMissingSummary),
		errors.Is(err, calendar.ErrMissingEventID),
		errors.Is(err, calendar.ErrInvalidEventRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, calendar.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return err
	}
}
