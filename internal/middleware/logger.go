package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/task-tracker/internal/constants"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id, echoes it in X-Request-ID and
// logs the outcome once the handler chain returns.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		entry := log.WithFields(logrus.Fields{
			"http.req.path":   c.Request.URL.Path,
			"http.req.method": c.Request.Method,
			"http.req.id":     requestID,
		})
		entry.Debug("request started")

		c.Next()

		entry = entry.WithFields(logrus.Fields{
			"http.resp.took_ms": int64(time.Since(start) / time.Millisecond),
			"http.resp.status":  c.Writer.Status(),
			"http.resp.bytes":   c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request complete")
		case status >= 400:
			entry.Warn("request complete")
		default:
			entry.Info("request complete")
		}
	}
}

// RequestID returns the id assigned by RequestLogger
func RequestID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRequestID)
}
