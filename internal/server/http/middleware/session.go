package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ViewIDContextKey is the gin context key for the view session id.
	ViewIDContextKey = "viewID"
	viewCookieName   = "orderfront_view"
)

// ViewSession guarantees every request carries a view session id. The id is
// minted here; stores and registries only ever bind state to it. It
// identifies a browsing session, not an authenticated user.
func ViewSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(viewCookieName)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(viewCookieName, id, 0, "/", "", false, true)
		}
		c.Set(ViewIDContextKey, id)
		c.Next()
	}
}
