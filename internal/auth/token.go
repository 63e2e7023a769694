// Package auth issues and validates the signed identity tokens that carry a
// caller's session. There is no server-side session state: a token is valid
// until it expires.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the public identity of an authenticated caller.
type Identity struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// Claims is the token payload: the identity plus the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uint64 `json:"id"`
	Username string `json:"username"`
}

// TokenCodec signs and verifies HS256 identity tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL is the validity window of issued tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue returns a signed token for identity that expires after the TTL.
func (c *TokenCodec) Issue(identity Identity) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID:   identity.ID,
		Username: identity.Username,
	})

	return token.SignedString(c.secret)
}

// Verify validates tokenString and returns the identity it carries.
func (c *TokenCodec) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return &Identity{ID: claims.UserID, Username: claims.Username}, nil
}

// Parse is Verify for callers that treat any bad token as anonymous: it
// returns nil for missing, malformed, expired or forged tokens.
func (c *TokenCodec) Parse(tokenString string) *Identity {
	if tokenString == "" {
		return nil
	}
	identity, err := c.Verify(tokenString)
	if err != nil {
		return nil
	}
	return identity
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// FromContext returns the identity stored in ctx, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
