package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/pkg/response"
)

// Create godoc
// @Summary     Create a note
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Note data"
// @Success     201 {object} noteEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "note.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newNoteEnvelope(output.Note))
}

// List godoc
// @Summary     List notes
// @Description Pinned notes first, then most recently edited.
// @Tags        Notes
// @Produce     json
// @Param       q      query string false "Search title and content"
// @Param       limit  query int    false "Page size (default: 50)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/notes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "note.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a note
// @Tags        Notes
// @Produce     json
// @Param       id path int true "Note ID"
// @Success     200 {object} noteEnvelope
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/notes/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "note.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNoteEnvelope(output.Note))
}

// Update godoc
// @Summary     Update a note
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Note ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} noteEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/notes/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "note.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNoteEnvelope(output.Note))
}

// Delete godoc
// @Summary     Delete a note
// @Tags        Notes
// @Param       id path int true "Note ID"
// @Success     200 {object} map[string]any "OK"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "note.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CheckItem godoc
// @Summary     Tick or untick checklist lines
// @Description Sets every "- [ ]" line whose text contains the given text.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path int          true "Note ID"
// @Param       body body checkItemReq true "Checklist line"
// @Success     200 {object} noteEnvelope
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/notes/{id}/checklist [POST]
func (h *handler) CheckItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCheckItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CheckItem(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "note.http.CheckItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNoteEnvelope(output.Note))
}
