package api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context key for the per-request identifier.
const ContextRequestIDKey = "requestID"

// RequestIDMiddleware tags every request with an identifier, echoed back in
// the X-Request-ID header. An incoming X-Request-ID is reused so callers can
// correlate logs across services.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogMiddleware logs method, path, status and latency per request.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestID, _ := c.Get(ContextRequestIDKey)
		log.Printf("%s %s -> %d (%s) [%v]",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			requestID,
			time.Since(start),
		)
	}
}

// abortWithError sends a standard JSON error response and stops the chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
