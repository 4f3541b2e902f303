package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// AuthMW authenticates requests using bearer tokens
type AuthMW struct {
	tokens domain.TokenService
}

// NewAuthMW creates new auth middleware
func NewAuthMW(tokens domain.TokenService) *AuthMW {
	return &AuthMW{tokens: tokens}
}

// WithJWT validates the Authorization header and stores the account identity
// in the request context.
func (m *AuthMW) WithJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a bearer token"})
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("account_role", string(claims.Role))
		c.Next()
	}
}
