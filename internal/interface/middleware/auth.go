package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-accounts/pkg/helpers"
	"user-accounts/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
	CtxRoleKey     = "role"
)

// BearerAuth validates the Authorization bearer token and injects the caller's
// identity into the Gin context.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortFail(c, http.StatusUnauthorized, "missing access token")
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "invalid access token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}

// roleRank orders roles for the hierarchical gate: Admin inherits every
// permission User has, never the reverse. Unknown roles rank below both.
var roleRank = map[string]int{"User": 1, "Admin": 2}

// RequireRole gates a route on the role carried by the access token. A caller
// whose role ranks at or above the required one is let through. Runs after
// BearerAuth.
func RequireRole(role string) gin.HandlerFunc {
	required := roleRank[role]
	return func(c *gin.Context) {
		caller := roleRank[c.GetString(CtxRoleKey)]
		if required == 0 || caller < required {
			response.AbortFail(c, http.StatusForbidden, "Anda tidak berhak mengakses resource ini")
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
