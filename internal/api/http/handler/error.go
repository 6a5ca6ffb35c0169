package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookly-app/bookly-server/internal/model"
)

// handleError maps service errors to an HTTP status and a response message.
// Unknown errors collapse into a generic 500 so internals never leak.
func handleError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrEmailTaken):
		return http.StatusForbidden, model.ErrEmailTaken.Error()
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusForbidden, model.ErrInvalidCredentials.Error()
	case errors.Is(err, model.ErrTokenInvalid):
		return http.StatusForbidden, model.ErrTokenInvalid.Error()
	case errors.Is(err, model.ErrTokenRevoked):
		return http.StatusForbidden, model.ErrTokenRevoked.Error()
	case errors.Is(err, model.ErrBlocklistUnavailable):
		return http.StatusServiceUnavailable, model.ErrBlocklistUnavailable.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func newErrorResponse(c *gin.Context, err error) {
	statusCode, message := handleError(err)
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}
