package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bidbench/internal/domain/dto"
	"github.com/guttosm/bidbench/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into a single
// standardized JSON error response.
//
// Handlers that call c.Error(err) and return without writing a response get a
// 500 with the first error's message; handlers that already wrote a response
// are left alone.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors[0].Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
