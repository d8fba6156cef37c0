package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ActorKey is the context key under which the resolved actor identifier is stored.
const ActorKey = "actorIdentifier"

// ActorMiddleware resolves the engagement actor identifier for the request.
// An authenticated caller (identified upstream via the X-User-ID header) gets
// a stable user-scoped identifier; everyone else falls back to their client IP.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(ActorKey, fmt.Sprintf("u:%s", userID))
		} else if ip := getClientIP(c); ip != "" {
			c.Set(ActorKey, fmt.Sprintf("ip:%s", ip))
		}
		c.Next()
	}
}

// GetActor returns the actor identifier resolved for this request, or an
// empty string for a fully anonymous caller.
func GetActor(c *gin.Context) string {
	return c.GetString(ActorKey)
}
