// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package signal

import (
	"context"
	"fmt"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/service"
	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/sirupsen/logrus"
)

// StoreContextLoader builds player context from the account, progress and daily stores.
type StoreContextLoader struct {
	accounts service.AccountStore
	progress service.ProgressStore
	daily    service.DailyTracker
	now      func() time.Time
}

// NewStoreContextLoader creates a loader. daily may be nil.
func NewStoreContextLoader(accounts service.AccountStore, progress service.ProgressStore, daily service.DailyTracker) *StoreContextLoader {
	return &StoreContextLoader{
		accounts: accounts,
		progress: progress,
		daily:    daily,
		now:      time.Now,
	}
}

// Load returns the context for an account. Players without an account have no context.
func (l *StoreContextLoader) Load(ctx context.Context, userID string) (*PlayerContext, error) {
	account, err := l.accounts.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	records, err := l.progress.FindByPlayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	playerCtx := &PlayerContext{
		UserID:      userID,
		Account:     account,
		Stats:       state.SummarizeProgress(records),
		SessionInfo: make(map[string]interface{}),
	}

	if l.daily != nil {
		streak, err := l.daily.CurrentStreak(ctx, userID, l.now())
		if err != nil {
			logrus.Warnf("failed to load daily streak for %s: %v", userID, err)
		}
		playerCtx.DailyStreak = streak
	}

	playerCtx.SessionInfo["level"] = account.Level
	playerCtx.SessionInfo["completed_games"] = playerCtx.Stats.CompletedGames
	playerCtx.SessionInfo["daily_streak"] = playerCtx.DailyStreak

	return playerCtx, nil
}

// Processor converts raw gameplay events into signals.
type Processor struct {
	loader   PlayerContextLoader
	registry *EventProcessorRegistry
}

// NewProcessor creates a processor with an empty event processor registry.
func NewProcessor(loader PlayerContextLoader) *Processor {
	return &Processor{
		loader:   loader,
		registry: NewEventProcessorRegistry(),
	}
}

// GetEventProcessorRegistry exposes the registry for registration at startup.
func (p *Processor) GetEventProcessorRegistry() *EventProcessorRegistry {
	return p.registry
}

// Process routes event to the processor registered for eventType.
func (p *Processor) Process(ctx context.Context, eventType string, event interface{}) (Signal, error) {
	if event == nil {
		return nil, fmt.Errorf("%s event is nil", eventType)
	}

	ep := p.registry.Get(eventType)
	if ep == nil {
		return nil, fmt.Errorf("no event processor registered for %s", eventType)
	}

	sig, err := ep.Process(ctx, event, p.loader)
	if err != nil {
		return nil, fmt.Errorf("failed to process %s event: %w", eventType, err)
	}

	if sig != nil {
		logrus.Debugf("processed %s event for user %s", eventType, sig.UserID())
	}
	return sig, nil
}
