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

const GrantItemActionID = "grant_item"

// GrantItemAction adds shop items to the player's inventory.
type GrantItemAction struct {
	config   action.ActionConfig
	accounts service.AccountStore
	itemID   string
	quantity int
}

func NewGrantItemAction(config action.ActionConfig, accounts service.AccountStore) (*GrantItemAction, error) {
	itemID := config.GetParameterString("item_id", "")
	quantity := config.GetParameterInt("quantity", 1)
	if itemID == "" || quantity <= 0 {
		return nil, fmt.Errorf("%w: %s needs item_id and a positive quantity", action.ErrInvalidConfig, config.ID)
	}
	return &GrantItemAction{config: config, accounts: accounts, itemID: itemID, quantity: quantity}, nil
}

func (a *GrantItemAction) ID() string                  { return a.config.ID }
func (a *GrantItemAction) Name() string                { return "Grant Item" }
func (a *GrantItemAction) Config() action.ActionConfig { return a.config }

func (a *GrantItemAction) Execute(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error {
	account, err := a.accounts.FindByID(ctx, trigger.UserID)
	if err != nil {
		return fmt.Errorf("failed to load account %s: %w", trigger.UserID, err)
	}
	if account.Inventory == nil {
		account.Inventory = make(map[string]int)
	}
	account.Inventory[a.itemID] += a.quantity

	if err := a.accounts.Save(ctx, account); err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}
	trigger.WithMetadata(appliedKey(a.ID()), true)
	if playerCtx != nil {
		playerCtx.Account = account
	}

	logrus.Infof("granted %d x %s to %s", a.quantity, a.itemID, account.ID)
	return nil
}

func (a *GrantItemAction) Rollback(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error {
	if applied, _ := trigger.Metadata[appliedKey(a.ID())].(bool); !applied {
		return nil
	}
	account, err := a.accounts.FindByID(ctx, trigger.UserID)
	if err != nil {
		return fmt.Errorf("failed to load account %s: %w", trigger.UserID, err)
	}
	if remaining := account.Inventory[a.itemID] - a.quantity; remaining > 0 {
		account.Inventory[a.itemID] = remaining
	} else {
		delete(account.Inventory, a.itemID)
	}
	delete(trigger.Metadata, appliedKey(a.ID()))
	return a.accounts.Save(ctx, account)
}
