package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/internal/shared/ratelimiter"
	"taskmaster/pkg/apierrors"
)

// Throttle rejects requests with 429 once the client IP exhausts its
// rate-limit window. Meant for the credential endpoints, where unbounded
// retries would enable password guessing.
func Throttle(limiter ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			slog.Warn("request throttled", "ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgTooManyRequests, GetLang(c)))
			return
		}
		c.Next()
	}
}
