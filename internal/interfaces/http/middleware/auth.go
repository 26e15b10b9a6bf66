package middleware

import (
	"github.com/gin-gonic/gin"

	"litrevu/internal/infrastructure/auth"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

type AuthMiddleware struct {
	sessions *auth.SessionService
	logger   logger.Interface
}

func NewAuthMiddleware(sessions *auth.SessionService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth verifies the session cookie and stashes the viewer identity in
// the request context. Anonymous requests are sent to the login page.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c)
		if token == "" {
			utils.RedirectResponse(c, "/")
			c.Abort()
			return
		}

		claims, err := m.sessions.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify session token", "error", err)
			utils.RedirectResponse(c, "/")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)

		c.Next()
	}
}

// ViewerID returns the authenticated user ID stashed by RequireAuth.
func ViewerID(c *gin.Context) uint {
	if id, ok := c.Get(ContextKeyUserID); ok {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// ViewerUsername returns the authenticated username stashed by RequireAuth.
func ViewerUsername(c *gin.Context) string {
	if name, ok := c.Get(ContextKeyUsername); ok {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}
