package httpserver

import (
	"time"

	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/dmitrijs2005/notesgraph/internal/logging"
	"github.com/dmitrijs2005/notesgraph/internal/server/auth"
	"github.com/dmitrijs2005/notesgraph/internal/server/graph"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestID reuses the caller's X-Request-ID or assigns a new one and echoes it back.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

func accessLog(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		)
	}
}

// bearerToken hands the Authorization bearer token to the GraphQL resolvers.
func bearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := auth.BearerToken(c.GetHeader(common.AuthorizationHeaderName)); ok {
			c.Request = c.Request.WithContext(graph.WithBearerToken(c.Request.Context(), token))
		}
		c.Next()
	}
}
