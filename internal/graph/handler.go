package graph

import (
	"context"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

type ginContextKey struct{}

// ginContext returns the gin context of the HTTP request being resolved.
// Mutations use it to set or clear the session cookie.
func ginContext(ctx context.Context) *gin.Context {
	c, _ := ctx.Value(ginContextKey{}).(*gin.Context)
	return c
}

// Handler serves POST {query, operationName, variables} requests.
func Handler(schema *graphql.Schema) gin.HandlerFunc {
	h := &relay.Handler{Schema: schema}

	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), ginContextKey{}, c)
		c.Request = c.Request.WithContext(ctx)

		h.ServeHTTP(c.Writer, c.Request)
	}
}
