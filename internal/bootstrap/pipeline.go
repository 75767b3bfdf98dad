// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"github.com/AccelByte/extend-word-groups/pkg/action"
	"github.com/AccelByte/extend-word-groups/pkg/pipeline"
	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
	"github.com/sirupsen/logrus"
)

// InitPipeline creates the pipeline manager with the rule-to-action mappings
// from config/pipeline.yaml:
//
//	rules:
//	  - id: first-win
//	    type: puzzles_completed
//	    actions: [unlock-achievement, bonus-xp]
//
// When a rule triggers its actions run in order. If one fails the ones
// already run are rolled back.
func InitPipeline(
	processor *signal.Processor,
	ruleEngine *rule.Engine,
	actionExecutor *action.Executor,
	pipelineConfig *pipeline.Config,
) *pipeline.Manager {
	ruleActions := pipelineConfig.RuleActions()
	logrus.Infof("configured %d rule-to-action mappings", len(ruleActions))

	manager := pipeline.NewManager(processor, ruleEngine, actionExecutor, ruleActions)
	logrus.Infof("initialized pipeline manager")

	return manager
}
