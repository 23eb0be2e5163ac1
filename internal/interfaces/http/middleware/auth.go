package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aeobro.backend/pkg/jwt"
)

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	// Gin context keys populated by AuthMiddleware.
	UserIDKey    = "userId"
	UserEmailKey = "userEmail"
	UserRoleKey  = "userRole"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// AuthMiddleware validates the bearer token and stores the caller's
// identity claims in the request context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthorizationHeader)
		if header == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization format. Use: Bearer <token>")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, BearerPrefix))
		if err != nil {
			if err == jwt.ErrExpiredToken {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// GetUserEmail returns the authenticated user's email from the context.
func GetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return v.(string), true
}

// GetUserRole returns the authenticated user's role from the context.
func GetUserRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return v.(string), true
}

// RequireRole rejects requests whose authenticated role is not in the
// allowed set. It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := GetUserRole(c)
		if !exists {
			abortUnauthorized(c, "User role not found")
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole("ADMIN")
}
