package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteBusiness maps a business error to its HTTP status. Unknown errors
// fall through to 500 so callers never leak internals.
func WriteBusiness(c *gin.Context, err error, message string) {
	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case CodeNotFound:
		NotFound(c, code, message)
	case CodeConflict:
		Conflict(c, code, message)
	default:
		BadRequest(c, code, message)
	}
}
