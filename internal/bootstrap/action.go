// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/action"
	actionBuiltin "github.com/AccelByte/extend-word-groups/pkg/action/builtin"
	"github.com/AccelByte/extend-word-groups/pkg/pipeline"
	"github.com/sirupsen/logrus"
)

// InitActionExecutor creates an action executor with the actions from pipeline config.
//
// The builtin actions:
//   - unlock_achievement adds the triggered achievement to the account
//   - award_xp grants bonus XP
//   - grant_item puts shop items in the inventory
//
// Actions that need stores receive them through deps.
func InitActionExecutor(
	pipelineConfig *pipeline.Config,
	deps *actionBuiltin.Dependencies,
) (*action.Executor, *action.Registry, error) {
	actionBuiltin.RegisterActions(deps)

	actionConfigs := pipelineConfig.ActionConfigs()

	registry := action.NewRegistry()
	if err := action.RegisterActions(registry, actionConfigs); err != nil {
		return nil, nil, fmt.Errorf("failed to register actions: %w", err)
	}

	logrus.Infof("registered %d actions", len(actionConfigs))

	executor := action.NewExecutor(registry)
	logrus.Infof("initialized action executor")

	return executor, registry, nil
}
