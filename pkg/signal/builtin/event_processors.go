// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-word-groups/pkg/signal"
)

// RegisterEventProcessors registers all built-in event processors.
func RegisterEventProcessors(registry *signal.EventProcessorRegistry) {
	registry.Register(&GroupSolvedEventProcessor{})
	registry.Register(&PuzzleCompletedEventProcessor{})
	registry.Register(&LevelUpEventProcessor{})
	registry.Register(&RewardAcquiredEventProcessor{})
}

func loadContext(ctx context.Context, loader signal.PlayerContextLoader, userID string) (*signal.PlayerContext, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is empty")
	}
	playerCtx, err := loader.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player context for user %s: %w", userID, err)
	}
	return playerCtx, nil
}

type GroupSolvedEventProcessor struct{}

func (p *GroupSolvedEventProcessor) EventType() string { return TypeGroupSolved }

func (p *GroupSolvedEventProcessor) Process(ctx context.Context, event interface{}, loader signal.PlayerContextLoader) (signal.Signal, error) {
	e, ok := event.(*GroupSolvedEvent)
	if !ok {
		return nil, fmt.Errorf("expected *GroupSolvedEvent, got %T", event)
	}
	playerCtx, err := loadContext(ctx, loader, e.UserID)
	if err != nil {
		return nil, err
	}
	e.OccurredAt = occurredAt(e.OccurredAt)
	return NewGroupSolvedSignal(e, playerCtx), nil
}

type PuzzleCompletedEventProcessor struct{}

func (p *PuzzleCompletedEventProcessor) EventType() string { return TypePuzzleCompleted }

func (p *PuzzleCompletedEventProcessor) Process(ctx context.Context, event interface{}, loader signal.PlayerContextLoader) (signal.Signal, error) {
	e, ok := event.(*PuzzleCompletedEvent)
	if !ok {
		return nil, fmt.Errorf("expected *PuzzleCompletedEvent, got %T", event)
	}
	playerCtx, err := loadContext(ctx, loader, e.UserID)
	if err != nil {
		return nil, err
	}
	e.OccurredAt = occurredAt(e.OccurredAt)
	return NewPuzzleCompletedSignal(e, playerCtx), nil
}

type LevelUpEventProcessor struct{}

func (p *LevelUpEventProcessor) EventType() string { return TypeLevelUp }

func (p *LevelUpEventProcessor) Process(ctx context.Context, event interface{}, loader signal.PlayerContextLoader) (signal.Signal, error) {
	e, ok := event.(*LevelUpEvent)
	if !ok {
		return nil, fmt.Errorf("expected *LevelUpEvent, got %T", event)
	}
	playerCtx, err := loadContext(ctx, loader, e.UserID)
	if err != nil {
		return nil, err
	}
	e.OccurredAt = occurredAt(e.OccurredAt)
	return NewLevelUpSignal(e, playerCtx), nil
}

type RewardAcquiredEventProcessor struct{}

func (p *RewardAcquiredEventProcessor) EventType() string { return TypeRewardAcquired }

func (p *RewardAcquiredEventProcessor) Process(ctx context.Context, event interface{}, loader signal.PlayerContextLoader) (signal.Signal, error) {
	e, ok := event.(*RewardAcquiredEvent)
	if !ok {
		return nil, fmt.Errorf("expected *RewardAcquiredEvent, got %T", event)
	}
	if e.RewardID == "" {
		return nil, fmt.Errorf("reward ID is empty")
	}
	playerCtx, err := loadContext(ctx, loader, e.UserID)
	if err != nil {
		return nil, err
	}
	e.OccurredAt = occurredAt(e.OccurredAt)
	return NewRewardAcquiredSignal(e, playerCtx), nil
}
