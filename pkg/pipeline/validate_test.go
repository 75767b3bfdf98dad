// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/AccelByte/extend-word-groups/pkg/action"
	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
)

type mockRule struct{ id string }

func (m *mockRule) ID() string            { return m.id }
func (m *mockRule) Name() string          { return "Mock Rule" }
func (m *mockRule) SignalTypes() []string { return nil }
func (m *mockRule) Evaluate(ctx context.Context, sig signal.Signal) (bool, *rule.Trigger, error) {
	return false, nil, nil
}
func (m *mockRule) Config() rule.RuleConfig {
	return rule.RuleConfig{ID: m.id, Type: "mock", Enabled: true}
}

type mockAction struct{ id string }

func (m *mockAction) ID() string   { return m.id }
func (m *mockAction) Name() string { return "Mock Action" }
func (m *mockAction) Execute(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error {
	return nil
}
func (m *mockAction) Rollback(ctx context.Context, trigger *rule.Trigger, playerCtx *signal.PlayerContext) error {
	return action.ErrRollbackNotSupported
}
func (m *mockAction) Config() action.ActionConfig {
	return action.ActionConfig{ID: m.id, Type: "mock", Enabled: true}
}

func TestValidateWiring(t *testing.T) {
	ruleRegistry := rule.NewRegistry()
	_ = ruleRegistry.Register(&mockRule{id: "r1"})
	actionRegistry := action.NewRegistry()
	_ = actionRegistry.Register(&mockAction{id: "a1"})

	tests := []struct {
		name    string
		config  *Config
		wantErr []string
	}{
		{
			name: "all registered",
			config: &Config{
				Rules:   []RuleConfig{{ID: "r1", Type: "mock", Enabled: true, Actions: []string{"a1"}}},
				Actions: []ActionConfig{{ID: "a1", Type: "mock", Enabled: true}},
			},
		},
		{
			name: "disabled entries are ignored",
			config: &Config{
				Rules:   []RuleConfig{{ID: "r2", Type: "mock", Enabled: false}},
				Actions: []ActionConfig{{ID: "a2", Type: "mock", Enabled: false}},
			},
		},
		{
			name: "missing rule and action",
			config: &Config{
				Rules:   []RuleConfig{{ID: "r2", Type: "typo", Enabled: true}},
				Actions: []ActionConfig{{ID: "a2", Type: "typo", Enabled: true}},
			},
			wantErr: []string{"rule 'r2'", "action 'a2'"},
		},
		{
			name: "rule uses disabled action",
			config: &Config{
				Rules:   []RuleConfig{{ID: "r1", Type: "mock", Enabled: true, Actions: []string{"a2"}}},
				Actions: []ActionConfig{{ID: "a2", Type: "mock", Enabled: false}},
			},
			wantErr: []string{"disabled action 'a2'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWiring(ruleRegistry, actionRegistry, tt.config)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("ValidateWiring() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected wiring error")
			}
			for _, fragment := range tt.wantErr {
				if !strings.Contains(err.Error(), fragment) {
					t.Errorf("error %q does not mention %q", err, fragment)
				}
			}
		})
	}
}
