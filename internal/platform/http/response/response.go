// Package response writes JSON error bodies for handlers.
package response

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/shared/apperror"
)

// ErrInvalidID is returned by ParamID for a non-numeric or zero id.
var ErrInvalidID = apperror.Validation("invalid id")

// Message is the body of every error response.
type Message struct {
	Message string `json:"message"`
}

// Error writes err with the status of its kind. Server errors are logged
// and reported with a generic message.
func Error(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "method", c.Request.Method, "path", c.FullPath(), "remote_addr", c.ClientIP())
	} else {
		slog.Warn("request rejected", "error", err, "status", status, "path", c.FullPath(), "remote_addr", c.ClientIP())
	}
	c.AbortWithStatusJSON(status, Message{Message: apperror.MessageOf(err)})
}

// BindError reports a request body that could not be decoded or failed
// its binding tags.
func BindError(c *gin.Context, err error) {
	slog.Warn("request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.AbortWithStatusJSON(http.StatusBadRequest, Message{Message: err.Error()})
}

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
