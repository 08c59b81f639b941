package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware provides per-API-key rate limiting
type RateLimitMiddleware struct {
	limiters    map[string]*rate.Limiter
	mu          sync.RWMutex
	rateLimit   rate.Limit
	burstSize   int
	cleanupTick *time.Ticker
}

// NewRateLimitMiddleware creates a new rate limiting middleware.
// ratePerSecond is the number of requests allowed per interval per API key;
// it also serves as the burst size.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration) func(http.Handler) http.Handler {
	var rateLimit rate.Limit
	if ratePerSecond <= 0 {
		rateLimit = rate.Inf // no limiting
		if ratePerSecond == 0 {
			rateLimit = 0 // no requests allowed
		}
	} else {
		rateLimit = rate.Every(interval / time.Duration(ratePerSecond))
	}

	middleware := &RateLimitMiddleware{
		limiters:    make(map[string]*rate.Limiter),
		rateLimit:   rateLimit,
		burstSize:   ratePerSecond,
		cleanupTick: time.NewTicker(5 * time.Minute),
	}

	go middleware.cleanup()

	return middleware.rateLimitHandler
}

// getLimiter gets or creates a rate limiter for the given API key
func (rl *RateLimitMiddleware) getLimiter(apiKey string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[apiKey]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := rl.limiters[apiKey]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[apiKey] = limiter

	return limiter
}

// rateLimitHandler is the HTTP middleware function
func (rl *RateLimitMiddleware) rateLimitHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.URL.Query().Get("key")
		if apiKey == "" {
			apiKey = "__no_key__"
		}

		limiter := rl.getLimiter(apiKey)

		if !limiter.Allow() {
			rl.sendRateLimitExceeded(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	var retryAfter time.Duration
	if rl.rateLimit == 0 {
		retryAfter = time.Hour
	} else if rl.rateLimit == rate.Inf {
		retryAfter = time.Second // should not happen, but fallback
	} else {
		retryAfter = time.Duration(1) / time.Duration(rl.rateLimit)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	errorResponse := map[string]interface{}{
		"code": http.StatusTooManyRequests,
		"text": "Rate limit exceeded. Please try again later.",
		"data": map[string]interface{}{
			"entry": nil,
			"references": map[string]interface{}{
				"countries": []interface{}{},
				"regions":   []interface{}{},
				"clusters":  []interface{}{},
			},
		},
		"currentTime": time.Now().UnixMilli(),
		"version":     "2",
	}

	_ = json.NewEncoder(w).Encode(errorResponse)
}

// cleanup periodically removes idle limiters to prevent unbounded growth.
// Limiters with available tokens have not been used recently and can be
// recreated on demand.
func (rl *RateLimitMiddleware) cleanup() {
	for range rl.cleanupTick.C {
		rl.mu.Lock()
		for key, limiter := range rl.limiters {
			if limiter.Tokens() > 0 {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Stop stops the cleanup goroutine
func (rl *RateLimitMiddleware) Stop() {
	if rl.cleanupTick != nil {
		rl.cleanupTick.Stop()
	}
}
