package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/pkg/clientip"
)

const (
	// GlobalRateLimitWindow / GlobalRateLimitMax bound all API traffic per IP.
	GlobalRateLimitWindow = 60 * time.Second
	GlobalRateLimitMax    = 120

	// AIRateLimitWindow / AIRateLimitMax bound the AI relay endpoints, which
	// each cost an upstream completion call.
	AIRateLimitWindow = 60 * time.Second
	AIRateLimitMax    = 12

	rateLimitKeyPrefix = "ratelimit:"
)

// RateLimit returns a fixed-window per-IP rate limiter backed by Redis.
// Redis failures fail open: a broken limiter should not take the API down.
func RateLimit(scope string, max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientip.FromRequest(r)
			key := rateLimitKeyPrefix + scope + ":" + ip
			ctx := context.Background()

			count, err := database.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				database.RedisClient.Expire(ctx, key, window)
			}

			if count > int64(max) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintf(w, `{"error":"Rate limit exceeded. Please try again later.","retry_after":%d}`, int(window.Seconds()))
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(max))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max-int(count)))

			next.ServeHTTP(w, r)
		})
	}
}

// GlobalRateLimit is applied to the whole API router.
func GlobalRateLimit() func(http.Handler) http.Handler {
	return RateLimit("global", GlobalRateLimitMax, GlobalRateLimitWindow)
}

// AIRateLimit is the stricter window applied on top of the global one for
// routes that forward to the completion API.
func AIRateLimit() func(http.Handler) http.Handler {
	return RateLimit("ai", AIRateLimitMax, AIRateLimitWindow)
}
