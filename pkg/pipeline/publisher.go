// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pipeline

import (
	"context"

	"github.com/AccelByte/extend-word-groups/pkg/metrics"
	"github.com/AccelByte/extend-word-groups/pkg/rule"
	"github.com/sirupsen/logrus"
)

// Publisher accepts domain events. *Manager implements it.
type Publisher interface {
	Process(ctx context.Context, eventType string, event interface{}) ([]*rule.Trigger, error)
}

// Publish runs an event through p as a side effect of a primary operation.
// Failures are logged and swallowed. It returns the achievements unlocked by
// the event. A nil publisher does nothing.
func Publish(ctx context.Context, p Publisher, eventType string, event interface{}) []string {
	if p == nil {
		return nil
	}

	triggers, err := p.Process(ctx, eventType, event)
	if err != nil {
		logrus.Warnf("achievement pipeline failed for %s event: %v", eventType, err)
		return nil
	}

	var unlocked []string
	for _, trigger := range triggers {
		if id := trigger.AchievementID(); id != "" {
			unlocked = append(unlocked, id)
			metrics.AchievementsUnlockedTotal.WithLabelValues(id).Inc()
		}
	}
	return unlocked
}
