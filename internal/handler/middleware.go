package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/backend/internal/service"
)

const authUserKey = "auth_user_id"

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// AuthMiddleware is the request-level gate: it resolves the caller's
// identity from the access token and makes it available downstream.
// The cookie takes precedence over the Authorization header.
func AuthMiddleware(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c, accessCookieName)
		if token == "" {
			fail(c, http.StatusUnauthorized, "Token is not present. User has to login")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(token, service.TokenAccess)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(authUserKey, userID)
		c.Next()
	}
}

// GetAuthUserID returns the identity id injected by AuthMiddleware.
func GetAuthUserID(c *gin.Context) string {
	if value, ok := c.Get(authUserKey); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
