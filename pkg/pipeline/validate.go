// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pipeline

import (
	"fmt"
	"strings"

	"github.com/AccelByte/extend-word-groups/pkg/action"
	"github.com/AccelByte/extend-word-groups/pkg/rule"
)

// ValidateWiring checks that every enabled rule and action in config was
// actually built and registered. A typo in a type or a factory that rejected
// its parameters shows up here instead of silently never firing.
func ValidateWiring(ruleRegistry *rule.Registry, actionRegistry *action.Registry, config *Config) error {
	var problems []string

	for _, rc := range config.Rules {
		if rc.Enabled && ruleRegistry.Get(rc.ID) == nil {
			problems = append(problems, fmt.Sprintf("rule '%s' (type=%s) is enabled in config but not registered", rc.ID, rc.Type))
		}
	}

	enabledActions := make(map[string]bool)
	for _, ac := range config.Actions {
		if !ac.Enabled {
			continue
		}
		enabledActions[ac.ID] = true
		if actionRegistry.Get(ac.ID) == nil {
			problems = append(problems, fmt.Sprintf("action '%s' (type=%s) is enabled in config but not registered", ac.ID, ac.Type))
		}
	}

	for _, rc := range config.Rules {
		if !rc.Enabled {
			continue
		}
		for _, actionID := range rc.Actions {
			if !enabledActions[actionID] {
				problems = append(problems, fmt.Sprintf("rule '%s' uses disabled action '%s'", rc.ID, actionID))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("pipeline wiring validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
