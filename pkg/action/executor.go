// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
	"github.com/sirupsen/logrus"
)

// Executor runs actions in response to rule triggers.
type Executor struct {
	registry *Registry
}

func NewExecutor(registry *Registry) *Executor {
	return &Executor{registry: registry}
}

// ExecuteMultiple runs actions in order and stops at the first failure.
// With rollbackOnError, actions that already ran are rolled back in reverse order.
func (e *Executor) ExecuteMultiple(ctx context.Context, actionIDs []string, trigger *rule.Trigger, playerCtx *signal.PlayerContext, rollbackOnError bool) ([]*ActionResult, error) {
	var results []*ActionResult
	var executed []Action

	fail := func(err error) ([]*ActionResult, error) {
		if rollbackOnError && len(executed) > 0 {
			e.rollback(ctx, executed, trigger, playerCtx)
		}
		return results, err
	}

	for _, actionID := range actionIDs {
		a := e.registry.Get(actionID)
		if a == nil {
			err := fmt.Errorf("%w: %s", ErrActionNotFound, actionID)
			logrus.Errorf("%v", err)
			results = append(results, NewActionError(actionID, err))
			return fail(err)
		}

		logrus.Debugf("executing action %s for trigger %s (user: %s)", actionID, trigger.RuleID, trigger.UserID)
		if err := a.Execute(ctx, trigger, playerCtx); err != nil {
			logrus.Errorf("action %s failed: %v", actionID, err)
			results = append(results, NewActionError(actionID, err))
			return fail(fmt.Errorf("action %s: %w", actionID, err))
		}

		executed = append(executed, a)
		results = append(results, NewActionResult(actionID))
	}

	return results, nil
}

func (e *Executor) rollback(ctx context.Context, actions []Action, trigger *rule.Trigger, playerCtx *signal.PlayerContext) {
	logrus.Warnf("rolling back %d actions for trigger %s", len(actions), trigger.RuleID)

	for i := len(actions) - 1; i >= 0; i-- {
		a := actions[i]
		err := a.Rollback(ctx, trigger, playerCtx)
		switch {
		case err == nil:
			logrus.Infof("action %s rolled back", a.ID())
		case errors.Is(err, ErrRollbackNotSupported):
			logrus.Warnf("action %s does not support rollback", a.ID())
		default:
			logrus.Errorf("failed to rollback action %s: %v", a.ID(), err)
		}
	}
}

func (e *Executor) GetRegistry() *Registry {
	return e.registry
}
