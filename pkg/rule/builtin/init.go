// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"github.com/AccelByte/extend-word-groups/pkg/rule"
)

// RegisterRules registers all built-in rule types with the factory.
func RegisterRules() {
	rule.RegisterRuleType(PuzzlesCompletedRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewPuzzlesCompletedRule(config)
	})
	rule.RegisterRuleType(DailyCompletedRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewDailyCompletedRule(config)
	})
	rule.RegisterRuleType(DailyStreakRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewDailyStreakRule(config)
	})
	rule.RegisterRuleType(PerfectPuzzleRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewPerfectPuzzleRule(config)
	})
	rule.RegisterRuleType(StreakReachedRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewStreakReachedRule(config)
	})
	rule.RegisterRuleType(LevelReachedRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewLevelReachedRule(config)
	})
	rule.RegisterRuleType(CollectorRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewCollectorRule(config)
	})
}
