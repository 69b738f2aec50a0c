package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"go_certify/api/v1/certificates"
	"go_certify/api/v1/middleware"
	"go_certify/internal/httpx"
	"go_certify/internal/issuance"
	"go_certify/internal/store"
	"go_certify/internal/verification"
)

// Deps carries the wired services the router needs
type Deps struct {
	Issuance     *issuance.Service
	Verification *verification.Service
	Store        store.Store
	// Redis enables the verify rate limiter when non-nil
	Redis              *redis.Client
	RateLimitPerMinute int
}

// SetupRouter mounts all routes
func SetupRouter(r *gin.Engine, deps Deps) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	r.GET("/ping", pingHandler)

	h := certificates.NewHandler(deps.Issuance, deps.Verification, deps.Store)

	group := r.Group("/certificates")
	{
		group.POST("/generate", h.Generate)
		group.GET("", h.List)
		group.POST("/status", h.SetStatus)
		group.GET("/card", h.Card)

		verifyHandlers := []gin.HandlerFunc{}
		if deps.Redis != nil {
			verifyHandlers = append(verifyHandlers, middleware.RateLimit(deps.Redis, deps.RateLimitPerMinute))
		}
		verifyHandlers = append(verifyHandlers, h.Verify)
		group.GET("/verify", verifyHandlers...)
	}
}

// pingHandler answers health checks
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"pong": true,
	})
}
