package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/auth"
	"github.com/yukikurage/task-tracker/internal/constants"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
)

// ResolveIdentity reads the session cookie once per request. A valid token
// stores the caller's identity in both the gin context and the request
// context; anything else leaves the caller anonymous.
func ResolveIdentity(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.SessionCookieName)
		if err == nil {
			if identity := codec.Parse(token); identity != nil {
				c.Set(constants.ContextKeyIdentity, *identity)
				c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), *identity))
			}
		}
		c.Next()
	}
}

// RequireAuth rejects anonymous callers
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentity(c); !ok {
			apierrors.Respond(c, apierrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity retrieves the caller's identity from context
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return 0, false
	}
	return identity.ID, true
}

// SetSessionCookie stores token in an HTTP-only, SameSite=Strict cookie.
func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.SessionCookieName, token, maxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.SessionCookieName, "", -1, "/", "", secure, true)
}
