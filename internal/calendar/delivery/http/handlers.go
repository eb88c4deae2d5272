package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/pkg/response"
)

// Items godoc
// @Summary     Calendar items for a date
// @Description Flags newly overdue items, then returns the caller's items grouped into display buckets.
// @Tags        Calendar
// @Produce     json
// @Param       date  query string true  "Viewed date (YYYY-MM-DD)"
// @Param       today query string false "Date used for overdue detection (YYYY-MM-DD), defaults to the server date"
// @Success     200 {object} itemsResp
// @Failure     400 {object} response.ErrorResp "Missing or invalid date"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/calendar/items [GET]
func (h *handler) Items(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processItemsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Items(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.Items: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemsResp(output))
}

// Events godoc
// @Summary     External calendar events for a date
// @Description Lists events of every configured calendar. Calendars that fail are skipped.
// @Tags        Calendar
// @Produce     json
// @Param       date query string true "Date (YYYY-MM-DD)"
// @Success     200 {object} eventsResp
// @Failure     400 {object} response.ErrorResp "Missing or invalid date"
// @Router      /api/calendar/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processEventsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Events(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.Events: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEventsResp(output))
}

// CreateEvent godoc
// @Summary     Create an external calendar event
// @Description All-day when startTime is empty; otherwise ends at endTime or after durationMinutes (default 60).
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event"
// @Success     201 {object} createEventResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     503 {object} response.ErrorResp "Calendar not configured"
// @Router      /api/calendar/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateEvent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.CreateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateEventResp(output))
}

// DeleteEvent godoc
// @Summary     Delete an external calendar event
// @Tags        Calendar
// @Produce     json
// @Param       eventId    path  string true  "Event ID"
// @Param       calendarId query string false "Calendar ID, defaults to the first configured calendar"
// @Success     200 {object} map[string]any "OK"
// @Failure     503 {object} response.ErrorResp "Calendar not configured"
// @Router      /api/calendar/events/{eventId} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processDeleteEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteEvent(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "calendar.http.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
