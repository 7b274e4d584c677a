package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkamande/tillpoint-api/internal/presentation/http/dto/response"
	"github.com/mkamande/tillpoint-api/pkg/auth"
)

// AuthMiddleware validates the terminal bearer token and puts the terminal
// identity into the request context.
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateTerminalToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("terminal_id", claims.TerminalID)
		c.Set("cashier", claims.Cashier)

		c.Next()
	}
}
