// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/action"
	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/service"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
	"github.com/sirupsen/logrus"
)

const UnlockAchievementActionID = "unlock_achievement"

// UnlockAchievementAction adds an achievement to the player's account.
// The achievement comes from the trigger, or from the action parameters when set.
type UnlockAchievementAction struct {
	config        action.ActionConfig
	accounts      service.AccountStore
	achievementID string
}

func NewUnlockAchievementAction(config action.ActionConfig, accounts service.AccountStore) *UnlockAchievementAction {
	return &UnlockAchievementAction{
		config:        config,
		accounts:      accounts,
		achievementID: config.GetParameterString("achievement_id", ""),
	}
}

func (a *UnlockAchievementAction) ID() string                  { return a.config.ID }
func (a *UnlockAchievementAction) Name() string                { return "Unlock Achievement" }
func (a *UnlockAchievementAction) Config() action.ActionConfig { return a.config }

func (a *UnlockAchievementAction) resolve(trigger *rule.Trigger) string {
	if a.achievementID != "" {
		return a.achievementID
	}
	return trigger.AchievementID()
}

// Execute is idempotent: an already unlocked achievement is left untouched.
func (a *UnlockAchievementAction) Execute(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error {
	achievementID := a.resolve(trigger)
	if achievementID == "" {
		return fmt.Errorf("no achievement_id on trigger %s or action %s", trigger.RuleID, a.ID())
	}

	account, err := a.accounts.FindByID(ctx, trigger.UserID)
	if err != nil {
		return fmt.Errorf("failed to load account %s: %w", trigger.UserID, err)
	}
	if account.HasAchievement(achievementID) {
		logrus.Debugf("achievement %s already unlocked for %s", achievementID, account.ID)
		return nil
	}

	account.Achievements = append(account.Achievements, achievementID)
	if err := a.accounts.Save(ctx, account); err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}
	trigger.WithMetadata(appliedKey(a.ID()), true)
	if playerCtx != nil {
		playerCtx.Account = account
	}

	logrus.Infof("unlocked achievement %s for %s", achievementID, account.ID)
	return nil
}

func (a *UnlockAchievementAction) Rollback(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error {
	if applied, _ := trigger.Metadata[appliedKey(a.ID())].(bool); !applied {
		return nil
	}
	achievementID := a.resolve(trigger)

	account, err := a.accounts.FindByID(ctx, trigger.UserID)
	if err != nil {
		return fmt.Errorf("failed to load account %s: %w", trigger.UserID, err)
	}
	kept := account.Achievements[:0]
	for _, id := range account.Achievements {
		if id != achievementID {
			kept = append(kept, id)
		}
	}
	account.Achievements = kept
	delete(trigger.Metadata, appliedKey(a.ID()))
	return a.accounts.Save(ctx, account)
}
