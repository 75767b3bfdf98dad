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
	"github.com/AccelByte/extend-word-groups/pkg/state"
	"github.com/sirupsen/logrus"
)

const AwardXPActionID = "award_xp"

// AwardXPAction grants a fixed amount of XP and levels the account up.
type AwardXPAction struct {
	config   action.ActionConfig
	accounts service.AccountStore
	amount   int
}

func NewAwardXPAction(config action.ActionConfig, accounts service.AccountStore) (*AwardXPAction, error) {
	amount := config.GetParameterInt("xp", 0)
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %s needs a positive xp parameter", action.ErrInvalidConfig, config.ID)
	}
	return &AwardXPAction{config: config, accounts: accounts, amount: amount}, nil
}

func (a *AwardXPAction) ID() string                  { return a.config.ID }
func (a *AwardXPAction) Name() string                { return "Award XP" }
func (a *AwardXPAction) Config() action.ActionConfig { return a.config }

func (a *AwardXPAction) Execute(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error {
	account, err := a.accounts.FindByID(ctx, trigger.UserID)
	if err != nil {
		return fmt.Errorf("failed to load account %s: %w", trigger.UserID, err)
	}

	info, leveledUp := state.ApplyXP(account, a.amount)
	if err := a.accounts.Save(ctx, account); err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}
	trigger.WithMetadata(appliedKey(a.ID()), true)
	if playerCtx != nil {
		playerCtx.Account = account
	}

	if leveledUp {
		logrus.Infof("account %s reached level %d from %s", account.ID, info.Level, trigger.RuleID)
	}
	return nil
}

// Rollback removes the XP again. The level is recomputed from the remaining XP.
func (a *AwardXPAction) Rollback(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error {
	if applied, _ := trigger.Metadata[appliedKey(a.ID())].(bool); !applied {
		return nil
	}
	account, err := a.accounts.FindByID(ctx, trigger.UserID)
	if err != nil {
		return fmt.Errorf("failed to load account %s: %w", trigger.UserID, err)
	}
	account.XP -= a.amount
	if account.XP < 0 {
		account.XP = 0
	}
	account.Level = state.LevelFor(account.XP).Level
	delete(trigger.Metadata, appliedKey(a.ID()))
	return a.accounts.Save(ctx, account)
}
