package ratelimit

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"taskapp/pkg/auth"
	"taskapp/pkg/metrics"
)

type EndpointConfig struct {
	Requests int
	Window   time.Duration
	KeyFunc  func(*gin.Context) string
}

type entry struct {
	Count     int
	ResetTime time.Time
}

// RateLimiter is a fixed-window limiter on go-cache. Auth endpoints are
// keyed by client IP, task endpoints by authenticated user.
type RateLimiter struct {
	cache   *cache.Cache
	config  map[string]EndpointConfig
	metrics *metrics.AppMetrics
}

func NewRateLimiter(m *metrics.AppMetrics) *RateLimiter {
	c := cache.New(5*time.Minute, 10*time.Minute)

	configs := map[string]EndpointConfig{
		"POST /api/auth/register": {
			Requests: 5,
			Window:   time.Minute,
			KeyFunc:  clientIP,
		},
		"POST /api/auth/login": {
			Requests: 10,
			Window:   time.Minute,
			KeyFunc:  clientIP,
		},
		"POST /api/todos": {
			Requests: 20,
			Window:   time.Minute,
			KeyFunc:  byUser,
		},
		"default": {
			Requests: 100,
			Window:   time.Minute,
			KeyFunc:  byUser,
		},
	}

	return &RateLimiter{
		cache:   c,
		config:  configs,
		metrics: m,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		route := c.Request.Method + " " + path

		config, ok := rl.config[route]

		if !ok {
			config = rl.config["default"]
		}

		clientKey := config.KeyFunc(c)
		key := fmt.Sprintf("%s|%s", route, clientKey)

		keyType := "user"

		if strings.HasPrefix(clientKey, "ip:") {
			keyType = "ip"
		}

		now := time.Now()

		var current entry

		if cached, found := rl.cache.Get(key); found {
			current = cached.(entry)
		}

		if now.After(current.ResetTime) {
			current = entry{Count: 0, ResetTime: now.Add(config.Window)}
		}

		current.Count++
		rl.cache.Set(key, current, config.Window)

		if current.Count > config.Requests {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(path, keyType)
			}

			retryAfter := int(time.Until(current.ResetTime).Seconds()) + 1

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"errors": []string{"Rate limit exceeded"},
			})

			c.Abort()
			return
		}

		if rl.metrics != nil {
			rl.metrics.RecordRateLimitAllowed(path, keyType)
		}

		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// byUser keys on the authenticated username, falling back to the client
// IP before authentication has run.
func byUser(c *gin.Context) string {
	if username := c.GetString(auth.UsernameKey); username != "" {
		return "user:" + username
	}

	return "ip:" + c.ClientIP()
}
