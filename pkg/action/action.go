// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package action

import (
	"context"

	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
)

// Action performs an operation in response to a trigger.
type Action interface {
	ID() string
	Name() string

	// Execute performs the action for the trigger's player.
	Execute(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error

	// Rollback undoes Execute when a later action of the same trigger fails.
	// Actions that cannot be undone return ErrRollbackNotSupported.
	Rollback(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error

	Config() ActionConfig
}

// ActionResult is the outcome of one action execution.
type ActionResult struct {
	ActionID string
	Success  bool
	Error    error
}

func NewActionResult(actionID string) *ActionResult {
	return &ActionResult{ActionID: actionID, Success: true}
}

func NewActionError(actionID string, err error) *ActionResult {
	return &ActionResult{ActionID: actionID, Error: err}
}
