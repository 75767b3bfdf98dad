// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/account"
	"github.com/AccelByte/extend-word-groups/pkg/auth"
	"github.com/AccelByte/extend-word-groups/pkg/game"
	"github.com/AccelByte/extend-word-groups/pkg/leaderboard"
	"github.com/AccelByte/extend-word-groups/pkg/puzzle"
	"github.com/AccelByte/extend-word-groups/pkg/service"
	"github.com/AccelByte/extend-word-groups/pkg/shop"
	"github.com/AccelByte/extend-word-groups/pkg/state"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []state.Reward{
	{ID: "hint", Name: "Hint Token", Type: state.RewardTypeConsumable, Cost: 150, LevelRequired: 1, Active: true},
	{ID: "time_freeze", Name: "Time Freeze", Type: state.RewardTypeConsumable, Cost: 300, LevelRequired: 3, Active: true},
}

type testServer struct {
	router  *gin.Engine
	puzzles *service.RedisPuzzleStore
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	accounts := service.NewRedisAccountStore(client)
	puzzles := service.NewRedisPuzzleStore(client, service.RedisPuzzleStoreConfig{})
	progress := service.NewRedisProgressStore(client)
	board := service.NewRedisLeaderboard(client)
	rewards := service.NewRedisRewardStore(client)

	tokens, err := auth.NewTokenIssuer("handler-test-secret", time.Hour)
	require.NoError(t, err)
	generator, err := puzzle.NewGenerator(puzzle.DefaultCategories)
	require.NoError(t, err)

	accountSvc := account.NewService(accounts, tokens, service.NewPrefixWalletVerifier("cosmos"), nil)
	shopSvc := shop.NewService(shop.Dependencies{
		Rewards:  rewards,
		Accounts: accounts,
		Puzzles:  puzzles,
		Progress: progress,
		Minter:   service.NewMockMinter(),
	}, shop.Config{Catalog: catalog})
	_, err = shopSvc.SeedIfEmpty(context.Background())
	require.NoError(t, err)

	h := New(Services{
		Accounts: accountSvc,
		Games: game.NewService(game.Dependencies{
			Puzzles:     puzzles,
			Progress:    progress,
			Leaderboard: board,
			Daily:       service.NewRedisDailyTracker(client),
			Generator:   generator,
			Accounts:    accountSvc,
		}, game.Config{MaxLives: 4}),
		Shop:        shopSvc,
		Leaderboard: leaderboard.NewService(board, accounts),
		Health:      service.NewHealthChecker(client),
	})

	router := gin.New()
	router.Use(Identity(auth.NewResolver(tokens, auth.NewSessionCache(time.Minute))))
	h.RegisterRoutes(router)

	return &testServer{router: router, puzzles: puzzles}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func (s *testServer) register(t *testing.T, username string) string {
	w, body := s.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return body["token"].(string)
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/api/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["redis"])
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice")

	w, body := s.do(t, http.MethodGet, "/api/auth/profile", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "passwordHash")

	w, _ = s.do(t, http.MethodGet, "/api/auth/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/auth/profile", nil, bearer("not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@example.com", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["token"])

	w, _ = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@example.com", "password": "nope123"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = s.do(t, http.MethodPost, "/api/auth/register", map[string]string{"username": "alice", "email": "x@example.com", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["message"], "already exists")

	w, _ = s.do(t, http.MethodPost, "/api/auth/register", map[string]string{"username": "bob"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWalletConnect(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/auth/wallet-connect", map[string]string{
		"walletAddress": "cosmos1walletaddr",
		"signature":     "sig",
		"message":       "sign in",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user_cosmos1w", user["username"])

	w, _ = s.do(t, http.MethodPost, "/api/auth/wallet-connect", map[string]string{
		"walletAddress": "osmo1walletaddr",
		"signature":     "sig",
		"message":       "sign in",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGameFlow(t *testing.T) {
	s := newTestServer(t)
	guest := map[string]string{auth.HeaderPlayerID: "guest-1"}

	w, body := s.do(t, http.MethodGet, "/api/games/daily", nil, guest)
	require.Equal(t, http.StatusOK, w.Code)
	puzzleID := body["game"].(map[string]interface{})["id"].(string)
	assert.Len(t, body["game"].(map[string]interface{})["words"], 16)

	p, err := s.puzzles.FindByID(context.Background(), puzzleID)
	require.NoError(t, err)

	w, body = s.do(t, http.MethodPost, "/api/games/guess", map[string]interface{}{
		"gameId":        puzzleID,
		"selectedWords": p.Groups[1].Words,
	}, guest)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["correct"])
	assert.EqualValues(t, 100, body["pointsEarned"])
	assert.Equal(t, p.Groups[1].Name, body["groupName"])

	w, _ = s.do(t, http.MethodPost, "/api/games/guess", map[string]interface{}{
		"gameId":        puzzleID,
		"selectedWords": p.Groups[0].Words[:3],
	}, guest)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/games/guess", map[string]interface{}{
		"gameId":        "missing",
		"selectedWords": p.Groups[0].Words,
	}, guest)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = s.do(t, http.MethodGet, "/api/progress/active", nil, guest)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["activeGames"], 1)

	w, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/progress/%s/reset", puzzleID), nil, guest)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/progress/missing/reset", nil, guest)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = s.do(t, http.MethodGet, "/api/leaderboard/rank", nil, guest)
	require.Equal(t, http.StatusOK, w.Code)
	rank := body["playerRank"].(map[string]interface{})
	assert.EqualValues(t, 1, rank["rank"])
	assert.EqualValues(t, 100, rank["score"])

	w, _ = s.do(t, http.MethodGet, "/api/leaderboard/global?limit=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRewards(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice")

	w, body := s.do(t, http.MethodGet, "/api/rewards", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["rewards"], 2)

	w, _ = s.do(t, http.MethodGet, "/api/rewards/hint", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(t, http.MethodGet, "/api/rewards/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = s.do(t, http.MethodPost, "/api/rewards/init", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "rewards already initialized", body["message"])

	w, _ = s.do(t, http.MethodPost, "/api/rewards/purchase", map[string]string{"rewardId": "hint"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = s.do(t, http.MethodPost, "/api/rewards/purchase", map[string]string{"rewardId": "hint"}, bearer(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "insufficient points", body["message"])

	w, body = s.do(t, http.MethodPost, "/api/rewards/purchase", map[string]string{"rewardId": "time_freeze"}, bearer(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "level 3 required", body["message"])

	w, body = s.do(t, http.MethodGet, "/api/users/inventory", nil, bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["inventory"], 0)

	w, _ = s.do(t, http.MethodPost, "/api/users/items/use", map[string]string{"itemId": "hint"}, bearer(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgression_DefaultForGuests(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/api/users/progression", nil, map[string]string{auth.HeaderPlayerID: "guest-9"})
	require.Equal(t, http.StatusOK, w.Code)
	progression := body["progression"].(map[string]interface{})
	assert.EqualValues(t, 1, progression["level"])
	assert.EqualValues(t, 100, progression["xpForNextLevel"])
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{service.NewError(service.ErrValidation, "bad"), http.StatusBadRequest},
		{service.NewError(service.ErrForbidden, "level"), http.StatusBadRequest},
		{service.NewError(service.ErrConflict, "taken"), http.StatusBadRequest},
		{service.NewError(service.ErrUnauthorized, "who"), http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", service.NewError(service.ErrNotFound, "gone")), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, statusFor(tt.err), "statusFor(%v)", tt.err)
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiter(0.001, 2).Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	for round := 0; round < 20; round++ {
		limiter := NewRateLimiter(0.001, 2)

		var allowed atomic.Int32
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if limiter.Allow("1.2.3.4") {
					allowed.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		require.Equal(t, int32(2), allowed.Load(), "round %d", round)
	}
}
