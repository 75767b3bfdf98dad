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
	PuzzlesCompletedRuleID = "puzzles_completed"
	DailyCompletedRuleID   = "daily_completed"
	DailyStreakRuleID      = "daily_streak"
	PerfectPuzzleRuleID    = "perfect_puzzle"

	DefaultPuzzlesCompletedThreshold = 1
	DefaultDailyCompletedThreshold   = 1
	DefaultDailyStreakThreshold      = 7
)

// PuzzlesCompletedRule fires once the player has completed threshold puzzles of any kind.
type PuzzlesCompletedRule struct {
	achievementRule
}

func NewPuzzlesCompletedRule(config rule.RuleConfig) (*PuzzlesCompletedRule, error) {
	base, err := newAchievementRule(config, DefaultPuzzlesCompletedThreshold)
	if err != nil {
		return nil, err
	}
	return &PuzzlesCompletedRule{achievementRule: base}, nil
}

func (r *PuzzlesCompletedRule) Name() string { return "Puzzles Completed" }

func (r *PuzzlesCompletedRule) SignalTypes() []string {
	return []string{signalBuiltin.TypePuzzleCompleted}
}

func (r *PuzzlesCompletedRule) Evaluate(ctx context.Context, sig signal.Signal) (bool, *rule.Trigger, error) {
	playerCtx, err := playerContext(sig)
	if err != nil {
		return false, nil, err
	}
	completed := playerCtx.Stats.CompletedGames
	return r.check(sig, completed, fmt.Sprintf("completed %d puzzles", completed))
}

// DailyCompletedRule counts completed daily puzzles only.
type DailyCompletedRule struct {
	achievementRule
}

func NewDailyCompletedRule(config rule.RuleConfig) (*DailyCompletedRule, error) {
	base, err := newAchievementRule(config, DefaultDailyCompletedThreshold)
	if err != nil {
		return nil, err
	}
	return &DailyCompletedRule{achievementRule: base}, nil
}

func (r *DailyCompletedRule) Name() string { return "Daily Puzzles Completed" }

func (r *DailyCompletedRule) SignalTypes() []string {
	return []string{signalBuiltin.TypePuzzleCompleted}
}

func (r *DailyCompletedRule) Evaluate(ctx context.Context, sig signal.Signal) (bool, *rule.Trigger, error) {
	completedSig, ok := sig.(*signalBuiltin.PuzzleCompletedSignal)
	if !ok {
		return false, nil, fmt.Errorf("expected PuzzleCompletedSignal, got %T", sig)
	}
	if !completedSig.IsDaily {
		return false, nil, nil
	}
	playerCtx, err := playerContext(sig)
	if err != nil {
		return false, nil, err
	}
	daily := playerCtx.Stats.DailyCompleted
	return r.check(sig, daily, fmt.Sprintf("completed %d daily puzzles", daily))
}

// DailyStreakRule fires on consecutive calendar days with a completed daily puzzle.
type DailyStreakRule struct {
	achievementRule
}

func NewDailyStreakRule(config rule.RuleConfig) (*DailyStreakRule, error) {
	base, err := newAchievementRule(config, DefaultDailyStreakThreshold)
	if err != nil {
		return nil, err
	}
	return &DailyStreakRule{achievementRule: base}, nil
}

func (r *DailyStreakRule) Name() string { return "Daily Streak" }

func (r *DailyStreakRule) SignalTypes() []string {
	return []string{signalBuiltin.TypePuzzleCompleted}
}

func (r *DailyStreakRule) Evaluate(ctx context.Context, sig signal.Signal) (bool, *rule.Trigger, error) {
	playerCtx, err := playerContext(sig)
	if err != nil {
		return false, nil, err
	}
	streak := playerCtx.DailyStreak
	return r.check(sig, streak, fmt.Sprintf("daily streak of %d days", streak))
}

// PerfectPuzzleRule fires when a puzzle is completed without a wrong guess.
type PerfectPuzzleRule struct {
	achievementRule
}

func NewPerfectPuzzleRule(config rule.RuleConfig) (*PerfectPuzzleRule, error) {
	base, err := newAchievementRule(config, 1)
	if err != nil {
		return nil, err
	}
	return &PerfectPuzzleRule{achievementRule: base}, nil
}

func (r *PerfectPuzzleRule) Name() string { return "Perfect Puzzle" }

func (r *PerfectPuzzleRule) SignalTypes() []string {
	return []string{signalBuiltin.TypePuzzleCompleted}
}

func (r *PerfectPuzzleRule) Evaluate(ctx context.Context, sig signal.Signal) (bool, *rule.Trigger, error) {
	completedSig, ok := sig.(*signalBuiltin.PuzzleCompletedSignal)
	if !ok {
		return false, nil, fmt.Errorf("expected PuzzleCompletedSignal, got %T", sig)
	}
	if completedSig.Mistakes() > 0 || r.unlocked(sig) {
		return false, nil, nil
	}
	return true, r.trigger(sig, "completed a puzzle without mistakes", completedSig.Attempts), nil
}
