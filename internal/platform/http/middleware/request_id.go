package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextRequestID = "requestID"
	headerRequestID  = "X-Request-ID"
)

// RequestID tags every request with a unique id, reusing the client-supplied
// X-Request-ID when present so ids stay stable across proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextRequestID, id)
		c.Writer.Header().Set(headerRequestID, id)
		c.Next()
	}
}

// GetRequestID returns the id bound for this request, or "" before RequestID ran.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(contextRequestID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
