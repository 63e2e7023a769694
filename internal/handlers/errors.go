package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
)

// respondError writes err as {"code","message"}. Errors without a kind are
// attached to the context for the request log and reported generically.
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		_ = c.Error(err)
	}
	apierrors.Respond(c, err)
}
