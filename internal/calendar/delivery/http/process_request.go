package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/internal/model"
	pkgErrors "lifeos/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processItemsReq binds the date and optional today query parameters.
func (h *handler) processItemsReq(c *gin.Context) (model.Scope, itemsReq, error) {
	var req itemsReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, errInvalidBody
	}
	return sc, req, nil
}

func (h *handler) processEventsReq(c *gin.Context) (model.Scope, eventsReq, error) {
	var req eventsReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, errInvalidBody
	}
	return sc, req, nil
}

func (h *handler) processCreateEventReq(c *gin.Context) (model.Scope, createEventReq, error) {
	var req createEventReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, errInvalidBody
	}
	return sc, req, nil
}

func (h *handler) processDeleteEventReq(c *gin.Context) (model.Scope, deleteEventReq, error) {
	var req deleteEventReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	req.EventID = c.Param("eventId")
	req.CalendarID = c.Query("calendarId")
	return sc, req, nil
}
