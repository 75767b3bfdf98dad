// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/pipeline"
	"github.com/AccelByte/extend-word-groups/pkg/rule"
	ruleBuiltin "github.com/AccelByte/extend-word-groups/pkg/rule/builtin"
	"github.com/sirupsen/logrus"
)

// InitRuleEngine creates a rule engine with the achievement rules from pipeline config.
//
// Rule types are registered in pkg/rule/builtin/init.go. Each configured rule
// instance names its type, threshold and the achievement it unlocks.
func InitRuleEngine(pipelineConfig *pipeline.Config) (*rule.Engine, *rule.Registry, error) {
	ruleBuiltin.RegisterRules()

	ruleConfigs := pipelineConfig.RuleConfigs()

	registry := rule.NewRegistry()
	if err := rule.RegisterRules(registry, ruleConfigs); err != nil {
		return nil, nil, fmt.Errorf("failed to register rules: %w", err)
	}

	logrus.Infof("registered %d rules", len(ruleConfigs))

	engine := rule.NewEngine(registry)
	logrus.Infof("initialized rule engine")

	return engine, registry, nil
}
