package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/internal/list"
	"lifeos/pkg/response"
)

// Create godoc
// @Summary     Create a list
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       body body createReq true "List data with optional initial entries"
// @Success     201 {object} listEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/lists [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "list.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newListEnvelope(output.List))
}

// List godoc
// @Summary     List lists
// @Description Pinned lists first, then most recently edited.
// @Tags        Lists
// @Produce     json
// @Param       q      query string false "Search titles"
// @Param       limit  query int    false "Page size (default: 50)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} pageResp
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/lists [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "list.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPageResp(output))
}

// Detail godoc
// @Summary     Get a list with its entries
// @Tags        Lists
// @Produce     json
// @Param       id path int true "List ID"
// @Success     200 {object} listEnvelope
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/lists/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "list.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEnvelope(output.List))
}

// Update godoc
// @Summary     Rename or pin a list
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id   path int       true "List ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} listEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/lists/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "list.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEnvelope(output.List))
}

// Delete godoc
// @Summary     Delete a list and its entries
// @Tags        Lists
// @Param       id path int true "List ID"
// @Success     200 {object} map[string]any "OK"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/lists/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "list.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// AddEntry godoc
// @Summary     Append an entry
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id   path int         true "List ID"
// @Param       body body addEntryReq true "Entry text"
// @Success     200 {object} listEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/lists/{id}/entries [POST]
func (h *handler) AddEntry(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAddEntryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddEntry(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "list.http.AddEntry: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEnvelope(output.List))
}

// UpdateEntry godoc
// @Summary     Rename or check off an entry
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id      path int            true "List ID"
// @Param       entryId path int            true "Entry ID"
// @Param       body    body updateEntryReq true "Fields to change"
// @Success     200 {object} listEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/lists/{id}/entries/{entryId} [PATCH]
func (h *handler) UpdateEntry(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateEntryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateEntry(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "list.http.UpdateEntry: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEnvelope(output.List))
}

// DeleteEntry godoc
// @Summary     Remove an entry
// @Tags        Lists
// @Produce     json
// @Param       id      path int true "List ID"
// @Param       entryId path int true "Entry ID"
// @Success     200 {object} listEnvelope
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/lists/{id}/entries/{entryId} [DELETE]
func (h *handler) DeleteEntry(c *gin.Context) {
	ctx := c.Request.Context()

	sc, listID, entryID, err := h.processEntryIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.DeleteEntry(ctx, sc, list.DeleteEntryInput{ListID: listID, EntryID: entryID})
	if err != nil {
		h.l.Warnf(ctx, "list.http.DeleteEntry: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEnvelope(output.List))
}

// ClearChecked godoc
// @Summary     Remove every checked entry
// @Tags        Lists
// @Produce     json
// @Param       id path int true "List ID"
// @Success     200 {object} listEnvelope
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/lists/{id}/clear-checked [POST]
func (h *handler) ClearChecked(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ClearChecked(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "list.http.ClearChecked: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEnvelope(output.List))
}
