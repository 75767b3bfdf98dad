// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"
	"testing"

	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
	signalBuiltin "github.com/AccelByte/extend-word-groups/pkg/signal/builtin"
	"github.com/AccelByte/extend-word-groups/pkg/state"
)

func config(id string, params map[string]interface{}) rule.RuleConfig {
	return rule.RuleConfig{ID: id, Type: id, Enabled: true, Priority: 1, Parameters: params}
}

func playerCtx(account *state.Account, stats state.PlayerStats, dailyStreak int) *signal.PlayerContext {
	return &signal.PlayerContext{UserID: account.ID, Account: account, Stats: stats, DailyStreak: dailyStreak}
}

func completed(attempts int, daily bool, ctx *signal.PlayerContext) signal.Signal {
	return signalBuiltin.NewPuzzleCompletedSignal(&signalBuiltin.PuzzleCompletedEvent{
		UserID: ctx.UserID, PuzzleID: "p1", Attempts: attempts, IsDaily: daily,
	}, ctx)
}

func TestNewAchievementRule_Validation(t *testing.T) {
	if _, err := NewPuzzlesCompletedRule(config("r", nil)); err == nil {
		t.Error("expected error when achievement_id is missing")
	}
	if _, err := NewPuzzlesCompletedRule(config("r", map[string]interface{}{"achievement_id": "a", "threshold": 0})); err == nil {
		t.Error("expected error for zero threshold")
	}
}

func TestPuzzleRules(t *testing.T) {
	account := &state.Account{ID: "acc-1"}
	stats := state.PlayerStats{CompletedGames: 10, DailyCompleted: 2}

	puzzles, _ := NewPuzzlesCompletedRule(config("ten", map[string]interface{}{"achievement_id": "ten_puzzles", "threshold": 10}))
	dailies, _ := NewDailyCompletedRule(config("daily", map[string]interface{}{"achievement_id": "first_daily"}))
	streak, _ := NewDailyStreakRule(config("week", map[string]interface{}{"achievement_id": "week_streak"}))
	perfect, _ := NewPerfectPuzzleRule(config("perfect", map[string]interface{}{"achievement_id": "perfect"}))

	tests := []struct {
		name     string
		rule     rule.Rule
		sig      signal.Signal
		expected bool
	}{
		{"puzzles at threshold", puzzles, completed(4, false, playerCtx(account, stats, 0)), true},
		{"puzzles below threshold", puzzles, completed(4, false, playerCtx(account, state.PlayerStats{CompletedGames: 9}, 0)), false},
		{"daily on practice puzzle", dailies, completed(4, false, playerCtx(account, stats, 0)), false},
		{"daily on daily puzzle", dailies, completed(4, true, playerCtx(account, stats, 0)), true},
		{"daily streak short", streak, completed(4, true, playerCtx(account, stats, 6)), false},
		{"daily streak reached", streak, completed(4, true, playerCtx(account, stats, 7)), true},
		{"perfect with mistakes", perfect, completed(5, false, playerCtx(account, stats, 0)), false},
		{"perfect without mistakes", perfect, completed(4, false, playerCtx(account, stats, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, trigger, err := tt.rule.Evaluate(context.Background(), tt.sig)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if matched != tt.expected {
				t.Errorf("matched = %v, expected %v", matched, tt.expected)
			}
			if matched && trigger.AchievementID() == "" {
				t.Error("trigger should carry an achievement id")
			}
		})
	}
}

func TestRules_SkipUnlockedAchievement(t *testing.T) {
	account := &state.Account{ID: "acc-1", Achievements: []string{"perfect"}}
	perfect, _ := NewPerfectPuzzleRule(config("perfect", map[string]interface{}{"achievement_id": "perfect"}))

	matched, _, err := perfect.Evaluate(context.Background(), completed(4, false, playerCtx(account, state.PlayerStats{}, 0)))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if matched {
		t.Error("rule should not fire for an unlocked achievement")
	}
}

func TestPlayerRules(t *testing.T) {
	account := &state.Account{ID: "acc-1", Level: 5, Inventory: map[string]int{"hint": 2, "shuffle": 0, "theme_dark": 1}}
	ctx := playerCtx(account, state.PlayerStats{}, 0)

	streak, _ := NewStreakReachedRule(config("hot", map[string]interface{}{"achievement_id": "hot_streak", "threshold": 4}))
	level, _ := NewLevelReachedRule(config("lvl", map[string]interface{}{"achievement_id": "level_5"}))
	collector, _ := NewCollectorRule(config("col", map[string]interface{}{"achievement_id": "collector", "threshold": 2}))

	solved := func(n int) signal.Signal {
		return signalBuiltin.NewGroupSolvedSignal(&signalBuiltin.GroupSolvedEvent{UserID: "acc-1", Streak: n}, ctx)
	}

	tests := []struct {
		name     string
		rule     rule.Rule
		sig      signal.Signal
		expected bool
	}{
		{"streak short", streak, solved(3), false},
		{"streak reached", streak, solved(4), true},
		{"level reached", level, signalBuiltin.NewLevelUpSignal(&signalBuiltin.LevelUpEvent{UserID: "acc-1", Level: 5}, ctx), true},
		{"collector counts positive quantities", collector, signalBuiltin.NewRewardAcquiredSignal(&signalBuiltin.RewardAcquiredEvent{UserID: "acc-1", RewardID: "hint"}, ctx), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, _, err := tt.rule.Evaluate(context.Background(), tt.sig)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if matched != tt.expected {
				t.Errorf("matched = %v, expected %v", matched, tt.expected)
			}
		})
	}

	if _, _, err := streak.Evaluate(context.Background(), completed(4, false, ctx)); err == nil {
		t.Error("expected error for mismatched signal type")
	}
}

func TestRegisterRules(t *testing.T) {
	RegisterRules()

	registry := rule.NewRegistry()
	configs := []rule.RuleConfig{
		config("a", map[string]interface{}{"achievement_id": "a"}),
		{ID: "b", Type: CollectorRuleID, Enabled: true, Parameters: map[string]interface{}{"achievement_id": "b"}},
	}
	configs[0].Type = PuzzlesCompletedRuleID

	if err := rule.RegisterRules(registry, configs); err != nil {
		t.Fatalf("RegisterRules() error = %v", err)
	}
	if registry.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", registry.Count())
	}
}
