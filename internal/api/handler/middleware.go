package handler

import (
	"net/http"
	"strings"

	"civicdesk/backend/internal/auth"
	"civicdesk/backend/internal/policy"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// JWTAuth validates the bearer token and stores the resulting Actor in the
// request context. Every authorization decision downstream starts from
// that explicit actor; nothing reads session state.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := auth.ParseValidate(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(actorKey, policy.Actor{
			UserID:       claims.Sub,
			Role:         claims.Role,
			DepartmentID: claims.DepartmentID,
		})
		c.Next()
	}
}

// ActorFrom extracts the authenticated actor placed by JWTAuth.
func ActorFrom(c *gin.Context) (policy.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return policy.Actor{}, false
	}
	actor, ok := v.(policy.Actor)
	return actor, ok
}
