package http

import (
	"errors"
	"net/http"

	"lifeos/internal/note"
	pkgErrors "lifeos/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid note id")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrNoteNotFound),
		errors.Is(err, note.ErrChecklistItem):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, note.ErrTitleRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
