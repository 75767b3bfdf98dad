// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pipeline

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/action"
	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/AccelByte/extend-word-groups/pkg/signal"
	"github.com/sirupsen/logrus"
)

// Manager runs the achievement pipeline: event, signal, rules, actions.
type Manager struct {
	processor   *signal.Processor
	engine      *rule.Engine
	executor    *action.Executor
	ruleActions map[string][]string
}

// NewManager wires the pipeline. ruleActions maps rule IDs to the action IDs they run.
func NewManager(processor *signal.Processor, engine *rule.Engine, executor *action.Executor, ruleActions map[string][]string) *Manager {
	if ruleActions == nil {
		ruleActions = make(map[string][]string)
	}
	return &Manager{
		processor:   processor,
		engine:      engine,
		executor:    executor,
		ruleActions: ruleActions,
	}
}

// Process pushes one event through the pipeline and returns the triggers whose
// actions all completed. A trigger whose actions failed is rolled back and left out.
func (m *Manager) Process(ctx context.Context, eventType string, event interface{}) ([]*rule.Trigger, error) {
	sig, err := m.processor.Process(ctx, eventType, event)
	if err != nil {
		return nil, fmt.Errorf("signal processing failed: %w", err)
	}
	if sig == nil {
		logrus.Debugf("%s event produced no signal", eventType)
		return nil, nil
	}

	triggers, err := m.engine.Evaluate(ctx, sig)
	if err != nil {
		return nil, fmt.Errorf("rule evaluation failed: %w", err)
	}
	if len(triggers) == 0 {
		return nil, nil
	}

	logrus.WithFields(logrus.Fields{
		"signal_type":   sig.Type(),
		"user_id":       sig.UserID(),
		"trigger_count": len(triggers),
	}).Info("rules triggered")

	var applied []*rule.Trigger
	for _, trigger := range triggers {
		actionIDs := m.ruleActions[trigger.RuleID]
		if len(actionIDs) == 0 {
			logrus.Infof("rule %s has no actions configured", trigger.RuleID)
			continue
		}

		results, err := m.executor.ExecuteMultiple(ctx, actionIDs, trigger, sig.Context(), true)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"rule_id":  trigger.RuleID,
				"user_id":  trigger.UserID,
				"executed": len(results),
			}).Errorf("action execution failed: %v", err)
			continue
		}
		applied = append(applied, trigger)
	}

	return applied, nil
}

// RuleActions returns the configured action IDs for a rule.
func (m *Manager) RuleActions(ruleID string) []string {
	return m.ruleActions[ruleID]
}
