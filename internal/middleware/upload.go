package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
)

// LimitBody caps the request body at maxBytes. Reads past the cap fail,
// which aborts multipart parsing before the payload is buffered.
func LimitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.Header("Connection", "close")
			apierrors.PayloadTooLarge(c, "Request body too large")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
