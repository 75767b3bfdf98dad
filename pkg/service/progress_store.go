// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"sort"

	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/go-redis/redis/v8"
)

// RedisProgressStore keeps one document per (player, puzzle) and an index per player.
type RedisProgressStore struct {
	docs *RedisCollection[state.Progress]
}

// NewRedisProgressStore creates a progress store. Progress never expires.
func NewRedisProgressStore(client redis.UniversalClient) *RedisProgressStore {
	return &RedisProgressStore{
		docs: NewRedisCollection[state.Progress](client, "progress", 0),
	}
}

func progressID(playerID, puzzleID string) string {
	return playerID + ":" + puzzleID
}

func playerTag(playerID string) string {
	return "player:" + playerID
}

func (s *RedisProgressStore) Find(ctx context.Context, playerID, puzzleID string) (*state.Progress, error) {
	return s.docs.FindByID(ctx, progressID(playerID, puzzleID))
}

// Create stores a new record; a second record for the same pair conflicts.
func (s *RedisProgressStore) Create(ctx context.Context, progress *state.Progress) error {
	return s.docs.Create(ctx, progressID(progress.PlayerID, progress.PuzzleID), progress, playerTag(progress.PlayerID))
}

func (s *RedisProgressStore) Save(ctx context.Context, progress *state.Progress) error {
	return s.docs.Save(ctx, progressID(progress.PlayerID, progress.PuzzleID), progress)
}

// FindByPlayer returns a player's records, most recently updated first.
func (s *RedisProgressStore) FindByPlayer(ctx context.Context, playerID string) ([]*state.Progress, error) {
	records, err := s.docs.FindByFilter(ctx, playerTag(playerID), nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records, nil
}
