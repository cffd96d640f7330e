package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/heartmarshall/customtrack-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID propagates the caller's X-Request-Id or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Request = c.Request.WithContext(ctxutil.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
