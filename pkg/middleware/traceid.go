package middleware

import (
	"concierge/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const traceHeader = "X-Trace-ID"

// TraceIDMiddleware tags the request with a trace id, reusing an incoming
// X-Trace-ID when it is a valid UUID, and stores a logger carrying it.
func TraceIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set(utils.TraceIDKey, traceID)
		c.Set(utils.LoggerKey, logger.With(zap.String("trace_id", traceID)))
		c.Writer.Header().Set(traceHeader, traceID)
		c.Next()
	}
}
