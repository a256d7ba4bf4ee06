package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/workoflow/hrms-api/internal/config"
)

// RateLimitMiddleware limits requests per client IP. With a Redis URL
// configured the counters are shared across instances; otherwise an
// in-process memory store is used. Returns a no-op when disabled.
func RateLimitMiddleware(cfg *config.Config, logger *logrus.Logger) gin.HandlerFunc {
	if !cfg.RateLimit.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  int64(cfg.RateLimit.RequestsPerMinute),
	}

	store := newLimiterStore(cfg, logger)
	rateLimiter := limiter.New(store, rate)

	return ginlimiter.NewMiddleware(rateLimiter)
}

func newLimiterStore(cfg *config.Config, logger *logrus.Logger) limiter.Store {
	if cfg.Redis.URL == "" {
		return memory.NewStore()
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.WithError(err).Warn("Invalid Redis URL, falling back to in-memory rate limiting")
		return memory.NewStore()
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}

	client := redis.NewClient(opts)
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "hrms-api:ratelimit",
	})
	if err != nil {
		logger.WithError(err).Warn("Redis rate limit store unavailable, falling back to in-memory")
		return memory.NewStore()
	}

	return store
}
