// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
	signalBuiltin "github.com/AccelByte/extend-word-groups/pkg/signal/builtin"
)

const (
	StreakReachedRuleID = "streak_reached"
	LevelReachedRuleID  = "level_reached"
	CollectorRuleID     = "collector"

	DefaultStreakThreshold    = 3
	DefaultLevelThreshold     = 5
	DefaultCollectorThreshold = 3
)

// StreakReachedRule fires when consecutive correct guesses reach the threshold.
type StreakReachedRule struct {
	achievementRule
}

func NewStreakReachedRule(config rule.RuleConfig) (*StreakReachedRule, error) {
	base, err := newAchievementRule(config, DefaultStreakThreshold)
	if err != nil {
		return nil, err
	}
	return &StreakReachedRule{achievementRule: base}, nil
}

func (r *StreakReachedRule) Name() string { return "Streak Reached" }

func (r *StreakReachedRule) SignalTypes() []string {
	return []string{signalBuiltin.TypeGroupSolved}
}

func (r *StreakReachedRule) Evaluate(ctx context.Context, sig signal.Signal) (bool, *rule.Trigger, error) {
	solved, ok := sig.(*signalBuiltin.GroupSolvedSignal)
	if !ok {
		return false, nil, fmt.Errorf("expected GroupSolvedSignal, got %T", sig)
	}
	return r.check(sig, solved.Streak, fmt.Sprintf("streak of %d correct guesses", solved.Streak))
}

// LevelReachedRule fires when the account reaches the configured level.
type LevelReachedRule struct {
	achievementRule
}

func NewLevelReachedRule(config rule.RuleConfig) (*LevelReachedRule, error) {
	base, err := newAchievementRule(config, DefaultLevelThreshold)
	if err != nil {
		return nil, err
	}
	return &LevelReachedRule{achievementRule: base}, nil
}

func (r *LevelReachedRule) Name() string { return "Level Reached" }

func (r *LevelReachedRule) SignalTypes() []string {
	return []string{signalBuiltin.TypeLevelUp}
}

func (r *LevelReachedRule) Evaluate(ctx context.Context, sig signal.Signal) (bool, *rule.Trigger, error) {
	levelSig, ok := sig.(*signalBuiltin.LevelUpSignal)
	if !ok {
		return false, nil, fmt.Errorf("expected LevelUpSignal, got %T", sig)
	}
	level := levelSig.Level
	if playerCtx := sig.Context(); playerCtx != nil && playerCtx.Account != nil && playerCtx.Account.Level > level {
		level = playerCtx.Account.Level
	}
	return r.check(sig, level, fmt.Sprintf("reached level %d", level))
}

// CollectorRule counts distinct items held in the inventory.
type CollectorRule struct {
	achievementRule
}

func NewCollectorRule(config rule.RuleConfig) (*CollectorRule, error) {
	base, err := newAchievementRule(config, DefaultCollectorThreshold)
	if err != nil {
		return nil, err
	}
	return &CollectorRule{achievementRule: base}, nil
}

func (r *CollectorRule) Name() string { return "Collector" }

func (r *CollectorRule) SignalTypes() []string {
	return []string{signalBuiltin.TypeRewardAcquired}
}

func (r *CollectorRule) Evaluate(ctx context.Context, sig signal.Signal) (bool, *rule.Trigger, error) {
	playerCtx, err := playerContext(sig)
	if err != nil {
		return false, nil, err
	}
	if playerCtx.Account == nil {
		return false, nil, nil
	}
	distinct := 0
	for _, qty := range playerCtx.Account.Inventory {
		if qty > 0 {
			distinct++
		}
	}
	return r.check(sig, distinct, fmt.Sprintf("collected %d distinct items", distinct))
}
