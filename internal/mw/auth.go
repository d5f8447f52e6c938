package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/internal/auth"
)

const (
	ctxTenantID = "tenant_id"
	ctxRole     = "role"
	ctxEmail    = "email"
)

// RequireAuth validates the Bearer token and stores the resolved tenant id
// and role on the request context. Handlers must take the tenant from here
// and never from the request payload or URL.
func RequireAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := svc.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxTenantID, claims.TenantID)
		c.Set(ctxRole, string(claims.Role))
		c.Set(ctxEmail, claims.Subject)
		c.Next()
	}
}

// RequireRole aborts unless the authenticated account has one of the given
// roles. Must run after RequireAuth.
func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := auth.Role(c.GetString(ctxRole))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

// TenantID returns the tenant resolved by RequireAuth.
func TenantID(c *gin.Context) string {
	return c.GetString(ctxTenantID)
}

// AccountEmail returns the authenticated account's email.
func AccountEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
