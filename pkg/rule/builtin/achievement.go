// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
)

// achievementRule carries the parts shared by every achievement rule: the
// achievement it unlocks and the threshold it compares against.
type achievementRule struct {
	config        rule.RuleConfig
	achievementID string
	threshold     int
}

func newAchievementRule(config rule.RuleConfig, defaultThreshold int) (achievementRule, error) {
	achievementID := config.GetString(rule.MetadataAchievementID, "")
	if achievementID == "" {
		return achievementRule{}, fmt.Errorf("rule %s: parameter achievement_id is required", config.ID)
	}
	threshold := config.GetInt("threshold", defaultThreshold)
	if threshold < 1 {
		return achievementRule{}, fmt.Errorf("rule %s: threshold must be positive, got %d", config.ID, threshold)
	}
	return achievementRule{
		config:        config,
		achievementID: achievementID,
		threshold:     threshold,
	}, nil
}

func (r *achievementRule) ID() string {
	return r.config.ID
}

func (r *achievementRule) Config() rule.RuleConfig {
	return r.config
}

// unlocked reports whether the player already holds the achievement.
func (r *achievementRule) unlocked(sig signal.Signal) bool {
	ctx := sig.Context()
	return ctx != nil && ctx.Account != nil && ctx.Account.HasAchievement(r.achievementID)
}

func (r *achievementRule) trigger(sig signal.Signal, reason string, value int) *rule.Trigger {
	return rule.NewTrigger(r.ID(), sig.UserID(), reason, r.config.Priority).
		WithMetadata(rule.MetadataAchievementID, r.achievementID).
		WithMetadata("threshold", r.threshold).
		WithMetadata("value", value)
}

// check fires when value reaches the threshold and the achievement is still locked.
func (r *achievementRule) check(sig signal.Signal, value int, reason string) (bool, *rule.Trigger, error) {
	if value < r.threshold || r.unlocked(sig) {
		return false, nil, nil
	}
	return true, r.trigger(sig, reason, value), nil
}

func playerContext(sig signal.Signal) (*signal.PlayerContext, error) {
	ctx := sig.Context()
	if ctx == nil {
		return nil, fmt.Errorf("signal %s for user %s has no player context", sig.Type(), sig.UserID())
	}
	return ctx, nil
}
