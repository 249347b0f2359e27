package jwtmw

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"task_backend/internal/feature/auth/domain/entity"
)

const (
	// ContextUserID is the gin context key holding the authenticated user's ID.
	ContextUserID = "userID"

	// ContextUser is the gin context key holding the resolved user entity.
	// The stored entity never carries the password hash.
	ContextUser = "user"
)

// UserFinder resolves a user ID extracted from a token to a stored user.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (adapters).
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens,
// resolves the embedded user against the store, and restricts access to
// authenticated users only.
func AuthRequired(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication token required"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Load secret key from environment variable
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 3. Parse and verify JWT signature
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			// Validation error or invalid token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// 4. Extract claims and resolve the user
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), uint(sub))
		if err != nil {
			// Token is valid but the account no longer exists
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		// Never expose the credential hash downstream
		user.Password = ""
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)

		// 5. Pass control to the next handler
		c.Next()
	}
}
