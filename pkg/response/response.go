package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "lifeos/pkg/errors"
)

// OK sends 200 JSON with the payload as the body.
func OK(c *gin.Context, data any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with the payload as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error body. HTTPErrors keep their status and extra fields,
// anything else becomes a 500 carrying the error message.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{"error": httpErr.Message}
	for k, v := range httpErr.Data {
		body[k] = v
	}
	c.AbortWithStatusJSON(httpErr.Code, body)
}

// BadRequest sends 400 with the given message.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResp{Error: msg})
}

// InternalError sends 500 with the error message.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Error: err.Error()})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResp{Error: "Unauthorized"})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, ErrorResp{Error: "Forbidden"})
}
