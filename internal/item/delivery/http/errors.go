package http

import (
	"errors"
	"net/http"

	"lifeos/internal/item"
	pkgErrors "lifeos/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid item id")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are returned as-is and rendered as 500.
func (h *handler) mapError(err error) error {
	var blocked *item.IncompleteChildrenError
	if errors.As(err, &blocked) {
		return pkgErrors.NewHTTPErrorWithData(http.StatusBadRequest, item.ErrIncompleteChildren.Error(), map[string]any{
			"incompleteCount": blocked.Count,
		})
	}

	switch {
	case errors.Is(err, item.ErrItemNotFound),
		errors.Is(err, item.ErrSubItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, item.ErrInvalidPayload),
		errors.Is(err, item.ErrTitleRequired),
		errors.Is(err, item.ErrInvalidItemType),
		errors.Is(err, item.ErrInvalidState),
		errors.Is(err, item.ErrInvalidDate),
		errors.Is(err, item.ErrInvalidTime),
		errors.Is(err, item.ErrInvalidRecurrence),
		errors.Is(err, item.ErrInvalidSchedule):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
