// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/AccelByte/extend-word-groups/pkg/action"
	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"gopkg.in/yaml.v3"
)

// Config is the achievement pipeline file: rules and the actions they run.
type Config struct {
	Rules   []RuleConfig   `yaml:"rules"`
	Actions []ActionConfig `yaml:"actions"`
}

type RuleConfig struct {
	ID         string                 `yaml:"id"`
	Name       string                 `yaml:"name,omitempty"`
	Type       string                 `yaml:"type"`
	Enabled    bool                   `yaml:"enabled"`
	Priority   int                    `yaml:"priority,omitempty"`
	Actions    []string               `yaml:"actions,omitempty"` // run in order when the rule triggers
	Parameters map[string]interface{} `yaml:"parameters,omitempty"`
}

type ActionConfig struct {
	ID         string                 `yaml:"id"`
	Name       string                 `yaml:"name,omitempty"`
	Type       string                 `yaml:"type"`
	Enabled    bool                   `yaml:"enabled"`
	Parameters map[string]interface{} `yaml:"parameters,omitempty"`
}

// LoadConfig reads a pipeline file, expanding ${VAR} and ${VAR:default}.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates pipeline YAML.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// Validate checks ids, types and that every referenced action is defined.
func (c *Config) Validate() error {
	ruleIDs := make(map[string]bool)
	for _, r := range c.Rules {
		if r.ID == "" {
			return fmt.Errorf("rule with empty ID found")
		}
		if ruleIDs[r.ID] {
			return fmt.Errorf("duplicate rule ID: %s", r.ID)
		}
		ruleIDs[r.ID] = true
		if r.Type == "" {
			return fmt.Errorf("rule %s has empty type", r.ID)
		}
	}

	actionIDs := make(map[string]bool)
	for _, a := range c.Actions {
		if a.ID == "" {
			return fmt.Errorf("action with empty ID found")
		}
		if actionIDs[a.ID] {
			return fmt.Errorf("duplicate action ID: %s", a.ID)
		}
		actionIDs[a.ID] = true
		if a.Type == "" {
			return fmt.Errorf("action %s has empty type", a.ID)
		}
	}

	for _, r := range c.Rules {
		for _, actionID := range r.Actions {
			if !actionIDs[actionID] {
				return fmt.Errorf("rule %s references unknown action: %s", r.ID, actionID)
			}
		}
	}
	return nil
}

// RuleConfigs converts the file entries for the rule factory.
func (c *Config) RuleConfigs() []rule.RuleConfig {
	result := make([]rule.RuleConfig, len(c.Rules))
	for i, rc := range c.Rules {
		result[i] = rule.RuleConfig{
			ID:         rc.ID,
			Name:       rc.Name,
			Type:       rc.Type,
			Enabled:    rc.Enabled,
			Priority:   rc.Priority,
			Parameters: rc.Parameters,
		}
	}
	return result
}

// ActionConfigs converts the file entries for the action factory.
func (c *Config) ActionConfigs() []action.ActionConfig {
	result := make([]action.ActionConfig, len(c.Actions))
	for i, ac := range c.Actions {
		result[i] = action.ActionConfig{
			ID:         ac.ID,
			Name:       ac.Name,
			Type:       ac.Type,
			Enabled:    ac.Enabled,
			Parameters: ac.Parameters,
		}
	}
	return result
}

// RuleActions maps each rule ID to its action IDs.
func (c *Config) RuleActions() map[string][]string {
	mapping := make(map[string][]string)
	for _, rc := range c.Rules {
		if len(rc.Actions) > 0 {
			mapping[rc.ID] = rc.Actions
		}
	}
	return mapping
}

func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		parts := strings.SplitN(key, ":", 2)
		value := os.Getenv(parts[0])
		if value == "" && len(parts) == 2 {
			return parts[1]
		}
		return value
	})
}
