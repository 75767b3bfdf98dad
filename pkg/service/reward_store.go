// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/go-redis/redis/v8"
	"gopkg.in/yaml.v3"
)

// RedisRewardStore holds the shop catalog.
type RedisRewardStore struct {
	docs *RedisCollection[state.Reward]
}

// NewRedisRewardStore creates a reward store.
func NewRedisRewardStore(client redis.UniversalClient) *RedisRewardStore {
	return &RedisRewardStore{
		docs: NewRedisCollection[state.Reward](client, "rewards", 0),
	}
}

func (s *RedisRewardStore) FindByID(ctx context.Context, id string) (*state.Reward, error) {
	return s.docs.FindByID(ctx, id)
}

// ListActive returns active rewards ordered by level gate, then cost.
func (s *RedisRewardStore) ListActive(ctx context.Context) ([]*state.Reward, error) {
	rewards, err := s.docs.FindByFilter(ctx, "", func(r *state.Reward) bool { return r.Active })
	if err != nil {
		return nil, err
	}
	sort.Slice(rewards, func(i, j int) bool {
		if rewards[i].LevelRequired != rewards[j].LevelRequired {
			return rewards[i].LevelRequired < rewards[j].LevelRequired
		}
		if rewards[i].Cost != rewards[j].Cost {
			return rewards[i].Cost < rewards[j].Cost
		}
		return rewards[i].ID < rewards[j].ID
	})
	return rewards, nil
}

func (s *RedisRewardStore) Count(ctx context.Context) (int, error) {
	rewards, err := s.docs.FindByFilter(ctx, "", nil)
	if err != nil {
		return 0, err
	}
	return len(rewards), nil
}

// CreateMany inserts rewards, stopping at the first failure.
func (s *RedisRewardStore) CreateMany(ctx context.Context, rewards []state.Reward) error {
	for i := range rewards {
		if err := s.docs.Create(ctx, rewards[i].ID, &rewards[i]); err != nil {
			return err
		}
	}
	return nil
}

type rewardCatalogFile struct {
	Rewards []state.Reward `yaml:"rewards"`
}

// LoadRewardCatalog reads the reward seed file.
func LoadRewardCatalog(path string) ([]state.Reward, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reward catalog %s: %w", path, err)
	}

	var file rewardCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse reward catalog: %w", err)
	}

	seen := make(map[string]bool, len(file.Rewards))
	for _, r := range file.Rewards {
		if r.ID == "" {
			return nil, fmt.Errorf("reward with empty id in %s", path)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate reward id: %s", r.ID)
		}
		seen[r.ID] = true
		if r.Cost < 0 || r.LevelRequired < 0 {
			return nil, fmt.Errorf("reward %s has negative cost or level", r.ID)
		}
		switch r.ClaimPeriod {
		case "", state.ClaimPeriodDaily, state.ClaimPeriodWeekly:
		default:
			return nil, fmt.Errorf("reward %s has unknown claim period %q", r.ID, r.ClaimPeriod)
		}
	}
	return file.Rewards, nil
}
