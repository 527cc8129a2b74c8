package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/promokit/promokit/internal/logger"
	"github.com/promokit/promokit/internal/types"
)

// RequestLoggerMiddleware logs one structured line per request
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Infow("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.Writer.Header().Get(types.HeaderRequestID),
		)
	}
}
