// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/go-redis/redis/v8"
)

// DefaultPuzzleRetention is how long a puzzle survives after creation.
const DefaultPuzzleRetention = 7 * 24 * time.Hour

// RedisPuzzleStore implements PuzzleStore on a RedisCollection with expiring documents.
type RedisPuzzleStore struct {
	docs *RedisCollection[state.Puzzle]
}

type RedisPuzzleStoreConfig struct {
	Retention time.Duration
}

// NewRedisPuzzleStore creates a puzzle store.
func NewRedisPuzzleStore(client redis.UniversalClient, cfg RedisPuzzleStoreConfig) *RedisPuzzleStore {
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultPuzzleRetention
	}
	return &RedisPuzzleStore{
		docs: NewRedisCollection[state.Puzzle](client, "puzzles", cfg.Retention),
	}
}

func (s *RedisPuzzleStore) FindByID(ctx context.Context, id string) (*state.Puzzle, error) {
	return s.docs.FindByID(ctx, id)
}

// Create stores a new puzzle; a second daily puzzle for the same date conflicts.
func (s *RedisPuzzleStore) Create(ctx context.Context, puzzle *state.Puzzle) error {
	return s.docs.Create(ctx, puzzle.ID, puzzle)
}

// Count returns the number of puzzles still retained.
func (s *RedisPuzzleStore) Count(ctx context.Context) (int, error) {
	puzzles, err := s.docs.FindByFilter(ctx, "", nil)
	if err != nil {
		return 0, err
	}
	return len(puzzles), nil
}
