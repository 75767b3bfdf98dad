// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr
}

func TestRedisCollection_CreateFindSave(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	ctx := context.Background()

	docs := NewRedisCollection[state.Reward](client, "things", 0)

	if _, err := docs.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(missing) error = %v, expected ErrNotFound", err)
	}

	doc := &state.Reward{ID: "a", Cost: 10}
	if err := docs.Create(ctx, "a", doc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := docs.Create(ctx, "a", doc); !errors.Is(err, ErrConflict) {
		t.Errorf("second Create() error = %v, expected ErrConflict", err)
	}

	doc.Cost = 20
	if err := docs.Save(ctx, "a", doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := docs.FindByID(ctx, "a")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Cost != 20 {
		t.Errorf("Cost = %d, expected 20", got.Cost)
	}
}

func TestRedisCollection_FindByFilter(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	ctx := context.Background()

	docs := NewRedisCollection[state.Reward](client, "things", 0)
	_ = docs.Create(ctx, "a", &state.Reward{ID: "a", Cost: 5}, "cheap")
	_ = docs.Create(ctx, "b", &state.Reward{ID: "b", Cost: 500})
	_ = docs.Create(ctx, "c", &state.Reward{ID: "c", Cost: 7}, "cheap")

	all, err := docs.FindByFilter(ctx, "", nil)
	if err != nil {
		t.Fatalf("FindByFilter() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, expected 3", len(all))
	}

	tagged, _ := docs.FindByFilter(ctx, "cheap", nil)
	if len(tagged) != 2 {
		t.Errorf("len(tagged) = %d, expected 2", len(tagged))
	}

	expensive, _ := docs.FindByFilter(ctx, "", func(r *state.Reward) bool { return r.Cost > 100 })
	if len(expensive) != 1 || expensive[0].ID != "b" {
		t.Errorf("filtered = %v, expected only b", expensive)
	}
}

func TestRedisPuzzleStore_Retention(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	ctx := context.Background()

	store := NewRedisPuzzleStore(client, RedisPuzzleStoreConfig{Retention: time.Hour})
	if err := store.Create(ctx, &state.Puzzle{ID: "daily-2025-10-19", IsDaily: true}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Create(ctx, &state.Puzzle{ID: "daily-2025-10-19", IsDaily: true}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate daily error = %v, expected ErrConflict", err)
	}

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("Count() = %d, expected 1", count)
	}

	mr.FastForward(2 * time.Hour)

	if _, err := store.FindByID(ctx, "daily-2025-10-19"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired puzzle error = %v, expected ErrNotFound", err)
	}
	count, _ = store.Count(ctx)
	if count != 0 {
		t.Errorf("Count() after expiry = %d, expected 0", count)
	}
}

func TestRedisProgressStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	ctx := context.Background()

	store := NewRedisProgressStore(client)
	now := time.Now()

	older := &state.Progress{PlayerID: "p1", PuzzleID: "x", UpdatedAt: now.Add(-time.Hour)}
	newer := &state.Progress{PlayerID: "p1", PuzzleID: "y", UpdatedAt: now}
	other := &state.Progress{PlayerID: "p2", PuzzleID: "x", UpdatedAt: now}

	for _, p := range []*state.Progress{older, newer, other} {
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := store.Create(ctx, &state.Progress{PlayerID: "p1", PuzzleID: "x"}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate progress error = %v, expected ErrConflict", err)
	}

	records, err := store.FindByPlayer(ctx, "p1")
	if err != nil {
		t.Fatalf("FindByPlayer() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, expected 2", len(records))
	}
	if records[0].PuzzleID != "y" {
		t.Errorf("records[0] = %s, expected most recent first", records[0].PuzzleID)
	}

	older.Points = 300
	if err := store.Save(ctx, older); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, _ := store.Find(ctx, "p1", "x")
	if got.Points != 300 {
		t.Errorf("Points = %d, expected 300", got.Points)
	}
}

func TestRedisAccountStore_Uniqueness(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	ctx := context.Background()

	store := NewRedisAccountStore(client)

	alice := &state.Account{ID: "1", Username: "alice", Email: "alice@example.com"}
	if err := store.Create(ctx, alice); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	dupEmail := &state.Account{ID: "2", Username: "alice2", Email: "ALICE@example.com"}
	if err := store.Create(ctx, dupEmail); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email error = %v, expected ErrConflict", err)
	}

	// The failed create must not keep its username reserved.
	retry := &state.Account{ID: "3", Username: "alice2", Email: "other@example.com"}
	if err := store.Create(ctx, retry); err != nil {
		t.Errorf("Create() after released reservation error = %v", err)
	}

	got, err := store.FindByEmail(ctx, "Alice@Example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if got.ID != "1" {
		t.Errorf("FindByEmail().ID = %s, expected 1", got.ID)
	}

	wallet := &state.Account{ID: "4", Username: "user_cosmos1a", WalletAddress: "cosmos1abc"}
	if err := store.Create(ctx, wallet); err != nil {
		t.Fatalf("Create(wallet) error = %v", err)
	}
	if got, err := store.FindByWallet(ctx, "cosmos1abc"); err != nil || got.ID != "4" {
		t.Errorf("FindByWallet() = %v, %v", got, err)
	}
	if _, err := store.FindByWallet(ctx, "cosmos1zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByWallet(unknown) error = %v, expected ErrNotFound", err)
	}
}

func TestRedisLeaderboard(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	ctx := context.Background()

	lb := NewRedisLeaderboard(client)
	_ = lb.AddPoints(ctx, "a", 100)
	_ = lb.AddPoints(ctx, "b", 300)
	_ = lb.AddPoints(ctx, "c", 200)
	_ = lb.AddPoints(ctx, "a", 250)

	top, err := lb.Top(ctx, 2)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if len(top) != 2 || top[0].PlayerID != "a" || top[0].Score != 350 || top[1].PlayerID != "b" {
		t.Errorf("Top(2) = %+v", top)
	}

	entry, total, err := lb.Rank(ctx, "c")
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if total != 3 || entry == nil || entry.Rank != 3 || entry.Score != 200 {
		t.Errorf("Rank(c) = %+v, total %d", entry, total)
	}

	entry, _, err = lb.Rank(ctx, "nobody")
	if err != nil || entry != nil {
		t.Errorf("Rank(nobody) = %+v, %v; expected unranked", entry, err)
	}
}

func TestRedisDailyTracker_Streak(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	ctx := context.Background()

	tracker := NewRedisDailyTracker(client)
	today := time.Date(2025, time.October, 19, 12, 0, 0, 0, time.UTC)

	for _, back := range []int{1, 2, 3, 5} {
		if err := tracker.RecordCompletion(ctx, "p", today.AddDate(0, 0, -back)); err != nil {
			t.Fatalf("RecordCompletion() error = %v", err)
		}
	}

	streak, err := tracker.CurrentStreak(ctx, "p", today)
	if err != nil {
		t.Fatalf("CurrentStreak() error = %v", err)
	}
	if streak != 3 {
		t.Errorf("streak before today = %d, expected 3", streak)
	}

	_ = tracker.RecordCompletion(ctx, "p", today)
	streak, _ = tracker.CurrentStreak(ctx, "p", today)
	if streak != 4 {
		t.Errorf("streak including today = %d, expected 4", streak)
	}

	streak, _ = tracker.CurrentStreak(ctx, "nobody", today)
	if streak != 0 {
		t.Errorf("streak for unknown player = %d, expected 0", streak)
	}
}

func TestHealthChecker(t *testing.T) {
	client, mr := setupTestRedis(t)

	checker := NewHealthChecker(client)
	if !checker.IsHealthy(context.Background()) {
		t.Error("expected healthy Redis")
	}

	mr.Close()
	if checker.IsHealthy(context.Background()) {
		t.Error("expected unhealthy Redis after close")
	}
}
