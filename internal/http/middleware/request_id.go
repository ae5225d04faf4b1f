package middleware

import (
	"github.com/gin-gonic/gin"

	"kundli.app/kundli/common/id"
	"kundli.app/kundli/common/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns a snowflake ID to each request, echoes it in the
// response header and threads it through the context log fields.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = id.NewString()
		}

		c.Writer.Header().Set(requestIDHeader, rid)
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(rid),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
