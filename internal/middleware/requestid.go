package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderXRequestID carries the correlation id, echoed back on every
	// response so the dashboard client can match requests to log lines.
	HeaderXRequestID = "X-Request-ID"
	// ContextRequestID is the gin context key the request logger reads.
	ContextRequestID = "request_id"
)

// RequestID tags each request with a correlation id, minting one when the
// caller did not supply its own.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set(ContextRequestID, rid)
		c.Header(HeaderXRequestID, rid)
		c.Next()
	}
}
