// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rule

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// RuleFactory creates a rule from its configuration.
type RuleFactory func(config RuleConfig) (Rule, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]RuleFactory)
)

// RegisterRuleType registers a factory for a rule type. Re-registering replaces the factory.
func RegisterRuleType(ruleType string, factory RuleFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[ruleType] = factory
	logrus.Debugf("registered rule type: %s", ruleType)
}

// CreateRule returns nil for disabled rules.
func CreateRule(config RuleConfig) (Rule, error) {
	if !config.Enabled {
		logrus.Infof("skipping disabled rule: %s", config.ID)
		return nil, nil
	}

	factoriesMu.RLock()
	factory, exists := factories[config.Type]
	factoriesMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("unknown rule type: %s", config.Type)
	}

	logrus.Debugf("creating rule: id=%s, type=%s, priority=%d", config.ID, config.Type, config.Priority)
	return factory(config)
}

// RegisterRules creates every configured rule and adds it to the registry.
// Unknown or invalid rules are logged and skipped; duplicate IDs fail.
func RegisterRules(registry *Registry, configs []RuleConfig) error {
	created := 0
	for _, config := range configs {
		r, err := CreateRule(config)
		if err != nil {
			logrus.Warnf("failed to create rule %s: %v", config.ID, err)
			continue
		}
		if r == nil {
			continue
		}
		if err := registry.Register(r); err != nil {
			return fmt.Errorf("failed to register rule %s: %w", r.ID(), err)
		}
		created++
	}

	logrus.Infof("registered %d rules", created)
	return nil
}
