// Package middleware provides HTTP middleware for the progress API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/metrics"
	"github.com/progresstrack/progress-api/internal/service"
)

const claimsKey = "claims"

// RequireAuth verifies the bearer token and stores its claims on the context.
// Missing or invalid tokens abort with 401.
func RequireAuth(jwtService service.JWTService, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			m.AuthEvent(metrics.EventTokenRejected)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := jwtService.Verify(token)
		if err != nil {
			m.AuthEvent(metrics.EventTokenRejected)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the verified claims carry role.
// It must run after RequireAuth.
func RequireRole(role string, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		if err := service.Authorize(claims, role); err != nil {
			m.AuthEvent(metrics.EventForbidden)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}

// SetClaims stores verified claims on the context.
func SetClaims(c *gin.Context, claims *service.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFrom returns the claims stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (*service.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.Claims)
	return claims, ok && claims != nil
}

// ExtractToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when the header is absent or malformed.
func ExtractToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return ""
	}
	return parts[1]
}
