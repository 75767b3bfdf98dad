// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"context"
	"testing"

	"github.com/AccelByte/extend-word-groups/pkg/signal"
	"github.com/AccelByte/extend-word-groups/pkg/state"
)

type staticLoader struct{}

func (staticLoader) Load(ctx context.Context, userID string) (*signal.PlayerContext, error) {
	return &signal.PlayerContext{UserID: userID, Account: &state.Account{ID: userID}}, nil
}

func TestRegisterEventProcessors(t *testing.T) {
	registry := signal.NewEventProcessorRegistry()
	RegisterEventProcessors(registry)

	if registry.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", registry.Count())
	}
	for _, eventType := range []string{TypeGroupSolved, TypePuzzleCompleted, TypeLevelUp, TypeRewardAcquired} {
		if registry.Get(eventType) == nil {
			t.Errorf("no processor for %s", eventType)
		}
	}
}

func TestPuzzleCompletedEventProcessor(t *testing.T) {
	p := &PuzzleCompletedEventProcessor{}
	event := &PuzzleCompletedEvent{UserID: "u1", PuzzleID: "daily-2025-10-19", Attempts: 6, Points: 650, IsDaily: true}

	sig, err := p.Process(context.Background(), event, staticLoader{})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	completed, ok := sig.(*PuzzleCompletedSignal)
	if !ok {
		t.Fatalf("signal type = %T, expected *PuzzleCompletedSignal", sig)
	}
	if completed.Type() != TypePuzzleCompleted {
		t.Errorf("Type() = %s", completed.Type())
	}
	if completed.Mistakes() != 2 {
		t.Errorf("Mistakes() = %d, expected 2", completed.Mistakes())
	}
	if completed.Metadata()["is_daily"] != true {
		t.Errorf("metadata = %v", completed.Metadata())
	}
	if completed.Timestamp().IsZero() {
		t.Error("timestamp should default to now")
	}
}

func TestEventProcessors_RejectWrongPayload(t *testing.T) {
	processors := []signal.EventProcessor{
		&GroupSolvedEventProcessor{},
		&PuzzleCompletedEventProcessor{},
		&LevelUpEventProcessor{},
		&RewardAcquiredEventProcessor{},
	}

	for _, p := range processors {
		if _, err := p.Process(context.Background(), struct{}{}, staticLoader{}); err == nil {
			t.Errorf("%s accepted a wrong payload", p.EventType())
		}
	}

	if _, err := (&LevelUpEventProcessor{}).Process(context.Background(), &LevelUpEvent{Level: 2}, staticLoader{}); err == nil {
		t.Error("expected error for empty user ID")
	}
}
