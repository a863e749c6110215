// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig configures the per-client limiter.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate allowed per client IP.
	// Default: 10.
	RequestsPerSecond float64

	// Burst is the short-term burst allowance. Default: 20.
	Burst int

	// ClientTTL is how long an idle client's limiter is retained
	// before eviction. Default: 10 minutes.
	ClientTTL time.Duration
}

// clientLimiter pairs a limiter with its last-seen time for eviction.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns middleware enforcing a token-bucket limit per
// client IP. Requests over the limit get a 429. Idle client state is
// evicted lazily so the map does not grow without bound.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.ClientTTL <= 0 {
		cfg.ClientTTL = 10 * time.Minute
	}

	var mu sync.Mutex
	clients := map[string]*clientLimiter{}
	lastSweep := time.Now()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		if now.Sub(lastSweep) > cfg.ClientTTL {
			for key, cl := range clients {
				if now.Sub(cl.lastSeen) > cfg.ClientTTL {
					delete(clients, key)
				}
			}
			lastSweep = now
		}

		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{
				limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
			}
			clients[ip] = cl
		}
		cl.lastSeen = now
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
