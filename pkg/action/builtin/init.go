// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/action"
	"github.com/AccelByte/extend-word-groups/pkg/service"
)

// Dependencies holds the stores built-in actions write to.
type Dependencies struct {
	Accounts service.AccountStore
}

// RegisterActions registers built-in action factories bound to deps.
func RegisterActions(deps *Dependencies) {
	action.RegisterActionType(UnlockAchievementActionID, func(config action.ActionConfig) (action.Action, error) {
		if deps == nil || deps.Accounts == nil {
			return nil, fmt.Errorf("%w: %s requires an account store", action.ErrInvalidConfig, config.ID)
		}
		return NewUnlockAchievementAction(config, deps.Accounts), nil
	})

	action.RegisterActionType(AwardXPActionID, func(config action.ActionConfig) (action.Action, error) {
		if deps == nil || deps.Accounts == nil {
			return nil, fmt.Errorf("%w: %s requires an account store", action.ErrInvalidConfig, config.ID)
		}
		return NewAwardXPAction(config, deps.Accounts)
	})

	action.RegisterActionType(GrantItemActionID, func(config action.ActionConfig) (action.Action, error) {
		if deps == nil || deps.Accounts == nil {
			return nil, fmt.Errorf("%w: %s requires an account store", action.ErrInvalidConfig, config.ID)
		}
		return NewGrantItemAction(config, deps.Accounts)
	})
}

// appliedKey marks on the trigger that an action changed state, so that
// Rollback only reverts what its own Execute did.
func appliedKey(actionID string) string {
	return "applied:" + actionID
}
