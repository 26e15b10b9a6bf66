package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/infrastructure/ratelimit"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

// LoginRateLimit caps login attempts per client IP. A zero limit disables the
// check, and limiter failures let the request through so an unreachable redis
// never locks everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, perMinute int, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perMinute <= 0 {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.ClientIP(), perMinute)
		if err != nil {
			log.Warnw("login rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
