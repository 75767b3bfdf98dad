// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"net/http"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/auth"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const identityKey = "identity"

// Identity resolves who the request acts for and stores it on the context.
func Identity(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, resolver.Resolve(c.Request))
		c.Next()
	}
}

// RequireAuth rejects requests without a valid session token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identityOf(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

const limiterIdleTimeout = 10 * time.Minute

// RateLimiter keeps a token bucket per client IP. Buckets of idle clients are evicted.
type RateLimiter struct {
	limiters *gocache.Cache
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: gocache.New(limiterIdleTimeout, 2*limiterIdleTimeout),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// limiter returns the bucket for key. Add only succeeds for the first caller,
// so concurrent first requests from one client share a single bucket.
func (l *RateLimiter) limiter(key string) *rate.Limiter {
	for {
		fresh := rate.NewLimiter(l.rps, l.burst)
		if err := l.limiters.Add(key, fresh, gocache.DefaultExpiration); err == nil {
			return fresh
		}
		if existing, ok := l.limiters.Get(key); ok {
			// Refresh the idle timeout; the stored bucket is unchanged.
			l.limiters.Set(key, existing, gocache.DefaultExpiration)
			return existing.(*rate.Limiter)
		}
	}
}

// Allow reports whether the client may make a request now.
func (l *RateLimiter) Allow(key string) bool {
	return l.limiter(key).Allow()
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			return
		}
		c.Next()
	}
}
