package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/logger"
)

// internalServerError is the body for anything that is not an APIError.
var internalServerError = gin.H{"message": "Internal server error"}

// HandleAPIError records err on the context and renders it. An APIError is
// sent as {"message"} with its own status; anything else becomes a 500.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.StatusCode, apiErr.ToMap())
		return
	}

	logger.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, internalServerError)
}

// Recovery turns a panic into the same 500 body HandleAPIError produces.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("request_id", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalServerError)
	})
}
