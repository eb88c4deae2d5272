package http

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"lifeos/internal/model"
	pkgErrors "lifeos/pkg/errors"
)

// processScope returns the caller's scope stored by the auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// processCreateReq binds the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, errInvalidBody
	}
	return sc, req, nil
}

// processListReq binds the list items query parameters.
func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, errInvalidBody
	}
	return sc, req, nil
}

// processIDReq resolves the scope and the :id path param.
func (h *handler) processIDReq(c *gin.Context) (model.Scope, uint, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, 0, err
	}
	id, err := h.processID(c)
	return sc, id, err
}

// processUpdateReq binds the update item request body and the :id path param.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, errInvalidBody
	}
	req.ID = id
	return sc, req, nil
}

// processToggleReq binds the optional toggle body and the :id path param.
func (h *handler) processToggleReq(c *gin.Context) (model.Scope, toggleReq, error) {
	var req toggleReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return sc, req, errInvalidBody
	}
	req.ID = id
	return sc, req, nil
}
