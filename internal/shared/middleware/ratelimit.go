package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/pkg/cache"
)

// RateLimit is a fixed-window per-client limiter backed by the cache.
// A Redis outage must not take the API down with it, so any cache error
// fails open. limit <= 0 disables the middleware entirely.
func RateLimit(store cache.Cache, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, failing open")
			c.Next()
			return
		}

		// First hit in the window owns setting the expiry
		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				log.Warn().Err(err).Msg("failed to set rate limit window")
			}
		}

		if count > int64(limit) {
			c.JSON(429, gin.H{"message": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
