// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package auth

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultSessionWindow is how long a verified token stays cached.
const DefaultSessionWindow = 5 * time.Minute

// SessionCache remembers recently verified tokens so repeated requests skip
// signature checks. Entries are evicted after the window or at token expiry,
// whichever comes first.
type SessionCache struct {
	cache  *gocache.Cache
	window time.Duration
}

// NewSessionCache creates a cache with the given eviction window.
func NewSessionCache(window time.Duration) *SessionCache {
	if window <= 0 {
		window = DefaultSessionWindow
	}
	return &SessionCache{
		cache:  gocache.New(window, 2*window),
		window: window,
	}
}

// Get returns the cached claims for token.
func (c *SessionCache) Get(token string) (*Claims, bool) {
	v, ok := c.cache.Get(token)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// Put caches claims for token.
func (c *SessionCache) Put(token string, claims *Claims) {
	ttl := c.window
	if !claims.ExpiresAt.IsZero() {
		if remaining := time.Until(claims.ExpiresAt); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return
	}
	c.cache.Set(token, claims, ttl)
}

// Forget drops a token.
func (c *SessionCache) Forget(token string) {
	c.cache.Delete(token)
}

// Len returns the number of cached sessions, including ones not yet swept.
func (c *SessionCache) Len() int {
	return c.cache.ItemCount()
}
