package http

import (
	"strconv"

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

func parseID(v string) (uint, bool) {
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *handler) processIDReq(c *gin.Context) (model.Scope, uint, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, 0, err
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		return sc, 0, errInvalidID
	}
	return sc, id, nil
}

func (h *handler) processEntryIDReq(c *gin.Context) (model.Scope, uint, uint, error) {
	sc, listID, err := h.processIDReq(c)
	if err != nil {
		return sc, 0, 0, err
	}
	entryID, ok := parseID(c.Param("entryId"))
	if !ok {
		return sc, 0, 0, errInvalidEntryID
	}
	return sc, listID, entryID, nil
}

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

func (h *handler) processAddEntryReq(c *gin.Context) (model.Scope, addEntryReq, error) {
	var req addEntryReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, errInvalidBody
	}
	req.ListID = id
	return sc, req, nil
}

func (h *handler) processUpdateEntryReq(c *gin.Context) (model.Scope, updateEntryReq, error) {
	var req updateEntryReq
	sc, listID, entryID, err := h.processEntryIDReq(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, errInvalidBody
	}
	req.ListID = listID
	req.EntryID = entryID
	return sc, req, nil
}
