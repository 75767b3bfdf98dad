// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package auth

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderAuthToken     = "x-auth-token"
	HeaderPlayerID      = "X-Player-ID"

	AnonymousPlayer = "anonymous"
)

// Identity is who a request acts for.
type Identity struct {
	// PlayerID keys progress and leaderboard entries: the account id when
	// authenticated, otherwise the client supplied id.
	PlayerID      string
	AccountID     string
	WalletAddress string
	Token         string
}

// Authenticated reports whether the identity belongs to an account.
func (i Identity) Authenticated() bool {
	return i.AccountID != ""
}

// Resolver turns request headers into an Identity.
type Resolver struct {
	issuer *TokenIssuer
	cache  *SessionCache
}

// NewResolver creates a resolver. cache may be nil.
func NewResolver(issuer *TokenIssuer, cache *SessionCache) *Resolver {
	return &Resolver{issuer: issuer, cache: cache}
}

// Resolve reads the session token, then the player id header. A bad token
// is not an error: the request simply continues as a guest.
func (r *Resolver) Resolve(req *http.Request) Identity {
	if token := TokenFromRequest(req); token != "" {
		if claims, ok := r.claims(token); ok {
			return Identity{
				PlayerID:      claims.AccountID,
				AccountID:     claims.AccountID,
				WalletAddress: claims.WalletAddress,
				Token:         token,
			}
		}
	}

	if id := strings.TrimSpace(req.Header.Get(HeaderPlayerID)); id != "" {
		return Identity{PlayerID: id}
	}
	return Identity{PlayerID: AnonymousPlayer}
}

func (r *Resolver) claims(token string) (*Claims, bool) {
	if r.cache != nil {
		if claims, ok := r.cache.Get(token); ok {
			return claims, true
		}
	}

	claims, err := r.issuer.Parse(token)
	if err != nil {
		logrus.Debugf("ignoring invalid session token: %v", err)
		return nil, false
	}

	if r.cache != nil {
		r.cache.Put(token, claims)
	}
	return claims, true
}

// TokenFromRequest returns the bearer token or the x-auth-token header.
func TokenFromRequest(req *http.Request) string {
	if h := req.Header.Get(HeaderAuthorization); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(req.Header.Get(HeaderAuthToken))
}
