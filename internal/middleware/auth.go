package middleware

import (
	"net/http"
	"strings"

	"campusfood/internal/domain"
	jwtsvc "campusfood/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved user id in the context.
func RequireAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwt)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// OptionalAuth resolves the acting identity when a valid token is present
// and falls back to the default anonymous identity otherwise. Used by the
// review submission endpoint, which accepts anonymous submissions.
func OptionalAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, jwt); ok {
			c.Set("user_id", claims.UserID)
		} else {
			c.Set("user_id", domain.AnonymousUserID)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, false
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}
