// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const leaderboardKey = KeyPrefix + "leaderboard:points"

// RedisLeaderboard ranks players by cumulative points in a sorted set.
type RedisLeaderboard struct {
	client redis.UniversalClient
}

// NewRedisLeaderboard creates a leaderboard.
func NewRedisLeaderboard(client redis.UniversalClient) *RedisLeaderboard {
	return &RedisLeaderboard{client: client}
}

func (l *RedisLeaderboard) AddPoints(ctx context.Context, playerID string, points int) error {
	if points == 0 {
		return nil
	}
	if err := l.client.ZIncrBy(ctx, leaderboardKey, float64(points), playerID).Err(); err != nil {
		return fmt.Errorf("failed to add leaderboard points: %w", err)
	}
	return nil
}

// Top returns the best limit players, highest score first.
func (l *RedisLeaderboard) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	results, err := l.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, z := range results {
		member, _ := z.Member.(string)
		entries = append(entries, LeaderboardEntry{
			PlayerID: member,
			Score:    int(z.Score),
			Rank:     i + 1,
		})
	}
	return entries, nil
}

// Rank returns the player's entry (nil when unranked) and the number of ranked players.
func (l *RedisLeaderboard) Rank(ctx context.Context, playerID string) (*LeaderboardEntry, int, error) {
	total, err := l.client.ZCard(ctx, leaderboardKey).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leaderboard: %w", err)
	}

	rank, err := l.client.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err == redis.Nil {
		return nil, int(total), nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to rank player: %w", err)
	}

	score, err := l.client.ZScore(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read player score: %w", err)
	}

	return &LeaderboardEntry{PlayerID: playerID, Score: int(score), Rank: int(rank) + 1}, int(total), nil
}
