package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/auth"
)

// Sessions starts and ends cookie sessions. There is no server-side state:
// starting a session issues a token, ending one expires the cookie.
type Sessions struct {
	codec  *auth.TokenCodec
	secure bool
}

// NewSessions creates Sessions. secure marks cookies HTTPS-only.
func NewSessions(codec *auth.TokenCodec, secure bool) *Sessions {
	return &Sessions{codec: codec, secure: secure}
}

// Start issues a token for identity and sets it as the session cookie.
func (s *Sessions) Start(c *gin.Context, identity auth.Identity) error {
	token, err := s.codec.Issue(identity)
	if err != nil {
		return err
	}
	SetSessionCookie(c, token, int(s.codec.TTL()/time.Second), s.secure)
	return nil
}

// End clears the session cookie.
func (s *Sessions) End(c *gin.Context) {
	ClearSessionCookie(c, s.secure)
}
