// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package action

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ActionFactory creates an action from its configuration.
type ActionFactory func(config ActionConfig) (Action, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]ActionFactory)
)

// RegisterActionType registers a factory for an action type. Re-registering replaces the factory.
func RegisterActionType(actionType string, factory ActionFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[actionType] = factory
	logrus.Debugf("registered action type: %s", actionType)
}

// CreateAction returns nil for disabled actions.
func CreateAction(config ActionConfig) (Action, error) {
	if !config.Enabled {
		logrus.Infof("skipping disabled action: %s", config.ID)
		return nil, nil
	}

	factoriesMu.RLock()
	factory, exists := factories[config.Type]
	factoriesMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("unknown action type: %s", config.Type)
	}

	logrus.Debugf("creating action: id=%s, type=%s", config.ID, config.Type)
	return factory(config)
}

// RegisterActions creates every configured action and adds it to the registry.
// Invalid actions are logged and skipped; duplicate IDs fail.
func RegisterActions(registry *Registry, configs []ActionConfig) error {
	created := 0
	for _, config := range configs {
		a, err := CreateAction(config)
		if err != nil {
			logrus.Warnf("failed to create action %s: %v", config.ID, err)
			continue
		}
		if a == nil {
			continue
		}
		if err := registry.Register(a); err != nil {
			return fmt.Errorf("failed to register action %s: %w", a.ID(), err)
		}
		created++
	}

	logrus.Infof("registered %d actions", created)
	return nil
}
