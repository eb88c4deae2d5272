package http

import (
	"github.com/gin-gonic/gin"

	"lifeos/pkg/response"
)

// Create godoc
// @Summary     Create an item
// @Description Creates a task, habit or reminder with optional sub-items. dueDate accepts YYYY-MM-DD or a relative expression.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201  {object} itemEnvelope
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     401  {object} response.ErrorResp "Unauthorized"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "item.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemEnvelope(output.Item))
}

// List godoc
// @Summary     List items
// @Description Returns the caller's top-level items, newest first.
// @Tags        Items
// @Produce     json
// @Param       itemType query string false "task, habit or reminder"
// @Param       state    query string false "backlog, active or completed"
// @Param       limit    query int    false "Page size (default: 50)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Router      /api/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "item.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemEnvelope
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "item.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemEnvelope(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Partial update. subItems, when present, is the full desired list of children:
// @Description entries with id are updated, entries without id are created, missing children are deleted.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemEnvelope
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "item.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemEnvelope(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Removes the item, its sub-items and all completion records.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} map[string]any "OK"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "item.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips completion for a date (default today). Advancing items return the next due date.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path int       true  "Item ID"
// @Param       body body toggleReq false "Date to toggle"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.ErrorResp "Bad Request or incomplete sub-items (incompleteCount)"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Router      /api/items/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "item.http.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}
