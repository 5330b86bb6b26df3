package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazebot/internal/ctxlog"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// requestID tags every request with a UUID, echoes it in the response and
// stores a request-scoped logger in the request context.
func requestID(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)

		log := base.With("request_id", id)
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), log))

		began := time.Now()
		c.Next()

		log.InfoContext(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(began),
		)
	}
}
