package http

import (
	"errors"
	"net/http"

	"lifeos/internal/list"
	pkgErrors "lifeos/pkg/errors"
)

var (
	errInvalidID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid list id")
	errInvalidEntryID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid entry id")
	errInvalidBody    = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, list.ErrListNotFound),
		errors.Is(err, list.ErrEntryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, list.ErrTitleRequired),
		errors.Is(err, list.ErrTextRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
