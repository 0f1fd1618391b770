package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/skilllinker/skilllinker/internal/auth"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/types"
	"gorm.io/gorm"
)

// AuthenticatedUser is the claims snapshot attached by AuthMiddleware. The
// role it carries is the one embedded at token issue time; RequireRoles
// always re-validates against the live user row.
type AuthenticatedUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// AuthMiddleware verifies the bearer token. A missing or malformed header is
// a 401; a token that fails verification is a 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token claims"})
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid user ID in token claims"})
			return
		}

		email, _ := claims["email"].(string)
		userType, _ := claims["user_type"].(string)

		ctx.Set(types.ContextClaimsKey, AuthenticatedUser{
			ID:       uint(userIDFloat),
			Email:    email,
			UserType: userType,
		})
		ctx.Next()
	}
}

// RequireRoles re-reads the authenticated user's row and rejects when the
// row is gone or the live role is not in allowedRoles. An empty allow-list
// admits any role. On success the fresh models.User is stored in the
// context for downstream handlers.
func RequireRoles(database *gorm.DB, allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextClaimsKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User not authenticated"})
			return
		}

		claims, ok := value.(AuthenticatedUser)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User not authenticated"})
			return
		}

		var user models.User

		if err := database.Where("id = ?", claims.ID).First(&user).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if len(allowedRoles) > 0 {
			allowed := false

			for _, role := range allowedRoles {
				if user.UserType == role {
					allowed = true
					break
				}
			}

			if !allowed {
				ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
				return
			}
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}
