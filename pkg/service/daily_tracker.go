// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/common"

	"github.com/go-redis/redis/v8"
)

const (
	dailyTrackerKeyPrefix = KeyPrefix + "daily_completions:"
	// dailyTrackerTTL bounds how far back a streak can be counted.
	dailyTrackerTTL = 60 * 24 * time.Hour
)

// RedisDailyTracker keeps a hash per player of YYYY-MM-DD -> 1 for completed daily puzzles.
type RedisDailyTracker struct {
	client redis.UniversalClient
}

// NewRedisDailyTracker creates a tracker.
func NewRedisDailyTracker(client redis.UniversalClient) *RedisDailyTracker {
	return &RedisDailyTracker{client: client}
}

func (r *RedisDailyTracker) RecordCompletion(ctx context.Context, playerID string, day time.Time) error {
	key := dailyTrackerKeyPrefix + playerID

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, common.DateKey(day), 1)
	pipe.Expire(ctx, key, dailyTrackerTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record daily completion: %w", err)
	}
	return nil
}

// CurrentStreak counts consecutive completed days ending today, or ending
// yesterday when today is not completed yet.
func (r *RedisDailyTracker) CurrentStreak(ctx context.Context, playerID string, today time.Time) (int, error) {
	days, err := r.client.HGetAll(ctx, dailyTrackerKeyPrefix+playerID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read daily completions: %w", err)
	}

	day := today
	if _, ok := days[common.DateKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[common.DateKey(day)]; !ok {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}
