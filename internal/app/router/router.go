// Package router assembles the gin engine: middleware chain, public
// endpoints and the authenticated API group.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authhandler "taskmaster/internal/feature/auth/transport/handler"
	taskhandler "taskmaster/internal/feature/tasks/transport/handler"
	platformhandler "taskmaster/internal/platform/http/handler"
	"taskmaster/internal/platform/http/middleware"
	jwtmw "taskmaster/internal/platform/jwt"
	"taskmaster/internal/shared/ratelimiter"
)

// publicPrefixes are served without a credential. Everything else passes
// through token verification.
var publicPrefixes = []string{"/healthz", "/api/auth"}

// Credential endpoints allow this many attempts per client IP per minute.
const authAttemptsPerMinute = 10

// NewRouter builds the HTTP surface. Identity resolution runs on every
// request outside the public prefixes; the /api/tasks group additionally
// rejects requests that carry no verified identity.
func NewRouter(logger *zap.Logger, codec *jwtmw.Codec,
	auth *authhandler.AuthHandler, tasks *taskhandler.TaskHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.GinZap(logger))
	r.Use(middleware.Language())
	r.Use(jwtmw.Authenticate(codec, publicPrefixes...))

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.Throttle(ratelimiter.NewRateLimiter(authAttemptsPerMinute, time.Minute)))
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
	}

	taskGroup := r.Group("/api/tasks")
	taskGroup.Use(jwtmw.RequireAuth())
	{
		taskGroup.POST("", tasks.Create)
		taskGroup.GET("", tasks.List)
		taskGroup.GET("/overdue", tasks.ListOverdue)
		taskGroup.GET("/:id", tasks.GetByID)
		taskGroup.PUT("/:id", tasks.Update)
		taskGroup.PATCH("/:id/status", tasks.UpdateStatus)
		taskGroup.DELETE("/:id", tasks.Delete)
	}

	return r
}
