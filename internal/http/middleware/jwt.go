package middleware

import (
	"net/http"
	"strings"

	"contactform-server/internal/token"
	"contactform-server/internal/utils"
	"github.com/gin-gonic/gin"
)

// JWTAuth guards protected routes. It only verifies the token and attaches
// the decoded claims; it never touches the stores.
func JWTAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "No token provided"))
			c.Abort()
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}
