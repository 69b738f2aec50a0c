package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"go_certify/internal/httpx"
)

// RateLimit applies a fixed-window per-IP limit backed by Redis. Used on
// the public verification endpoint, which is the only unauthenticated
// surface an outsider can hammer. Fails open when Redis is unreachable:
// a broken limiter must not take verification down with it.
func RateLimit(client *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:verify:%s:%d", c.ClientIP(), window)

		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			logrus.WithError(err).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(c.Request.Context(), key, time.Minute)
		}

		if count > int64(perMinute) {
			httpx.Fail(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
