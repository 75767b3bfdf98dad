// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rule

import (
	"context"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/signal"
)

// MetadataAchievementID is the trigger metadata key read by achievement actions.
const MetadataAchievementID = "achievement_id"

// Rule evaluates signals and emits triggers when conditions are met.
type Rule interface {
	ID() string
	Name() string

	// SignalTypes returns which signal types this rule handles.
	// An empty slice means the rule handles all signal types.
	SignalTypes() []string

	// Evaluate returns true and a trigger when the rule matches.
	// Errors are reserved for unexpected failures, not mismatches.
	Evaluate(ctx context.Context, sig signal.Signal) (bool, *Trigger, error)

	Config() RuleConfig
}

// Trigger represents a rule match that should execute actions.
type Trigger struct {
	RuleID    string
	UserID    string
	Timestamp time.Time
	Reason    string
	Metadata  map[string]interface{}
	Priority  int // higher runs first
}

func NewTrigger(ruleID, userID, reason string, priority int) *Trigger {
	return &Trigger{
		RuleID:    ruleID,
		UserID:    userID,
		Timestamp: time.Now(),
		Reason:    reason,
		Metadata:  make(map[string]interface{}),
		Priority:  priority,
	}
}

// WithMetadata adds metadata to the trigger and returns it for chaining.
func (t *Trigger) WithMetadata(key string, value interface{}) *Trigger {
	t.Metadata[key] = value
	return t
}

// AchievementID returns the achievement carried by the trigger, if any.
func (t *Trigger) AchievementID() string {
	if id, ok := t.Metadata[MetadataAchievementID].(string); ok {
		return id
	}
	return ""
}
