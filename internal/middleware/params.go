package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
)

const paramKeyPrefix = "param_id:"

// RequireIDParam checks that the named URL parameter is a positive integer
// and stores the parsed value for GetIDParam.
func RequireIDParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(name), 10, 64)
		if err != nil || id == 0 {
			apierrors.BadRequest(c, "Invalid "+name)
			c.Abort()
			return
		}

		c.Set(paramKeyPrefix+name, id)
		c.Next()
	}
}

// GetIDParam returns the ID parsed by RequireIDParam
func GetIDParam(c *gin.Context, name string) uint64 {
	return c.GetUint64(paramKeyPrefix + name)
}
