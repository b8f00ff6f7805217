package middleware

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
)

// ErrorHandler converts errors attached via c.Error into the standard JSON
// error envelope. Handlers never write error bodies themselves.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	c.AbortWithStatusJSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
}
