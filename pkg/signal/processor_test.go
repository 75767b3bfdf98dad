// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package signal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/service"
	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// mockLoader returns a fixed context for every user.
type mockLoader struct {
	err error
}

func (m *mockLoader) Load(ctx context.Context, userID string) (*PlayerContext, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &PlayerContext{UserID: userID, Account: &state.Account{ID: userID, Level: 1}}, nil
}

type pingEvent struct {
	UserID string
}

type pingProcessor struct{}

func (p *pingProcessor) EventType() string { return "ping" }

func (p *pingProcessor) Process(ctx context.Context, event interface{}, loader PlayerContextLoader) (Signal, error) {
	e, ok := event.(*pingEvent)
	if !ok {
		return nil, errors.New("not a ping")
	}
	playerCtx, err := loader.Load(ctx, e.UserID)
	if err != nil {
		return nil, err
	}
	base := NewBaseSignal("ping", e.UserID, time.Now(), nil, playerCtx)
	return &base, nil
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor(&mockLoader{})
	p.GetEventProcessorRegistry().Register(&pingProcessor{})

	sig, err := p.Process(context.Background(), "ping", &pingEvent{UserID: "u1"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if sig.Type() != "ping" || sig.UserID() != "u1" {
		t.Errorf("signal = %s/%s", sig.Type(), sig.UserID())
	}
	if sig.Context() == nil || sig.Context().Account.ID != "u1" {
		t.Error("expected player context on signal")
	}
	if sig.Metadata() == nil {
		t.Error("metadata should never be nil")
	}
}

func TestProcessor_Errors(t *testing.T) {
	p := NewProcessor(&mockLoader{err: errors.New("boom")})
	p.GetEventProcessorRegistry().Register(&pingProcessor{})

	tests := []struct {
		name      string
		eventType string
		event     interface{}
	}{
		{"nil event", "ping", nil},
		{"unknown type", "pong", &pingEvent{UserID: "u1"}},
		{"loader failure", "ping", &pingEvent{UserID: "u1"}},
		{"wrong payload", "ping", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Process(context.Background(), tt.eventType, tt.event); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStoreContextLoader(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	accounts := service.NewRedisAccountStore(client)
	progress := service.NewRedisProgressStore(client)
	daily := service.NewRedisDailyTracker(client)

	_ = accounts.Create(ctx, &state.Account{ID: "acc", Username: "alice", Level: 3})
	_ = progress.Create(ctx, &state.Progress{PlayerID: "acc", PuzzleID: "p1", IsCompleted: true, IsDaily: true, Points: 650})
	_ = progress.Create(ctx, &state.Progress{PlayerID: "acc", PuzzleID: "p2", Points: 100})

	now := time.Date(2025, time.October, 19, 9, 0, 0, 0, time.UTC)
	_ = daily.RecordCompletion(ctx, "acc", now)
	_ = daily.RecordCompletion(ctx, "acc", now.AddDate(0, 0, -1))

	loader := NewStoreContextLoader(accounts, progress, daily)
	loader.now = func() time.Time { return now }

	playerCtx, err := loader.Load(ctx, "acc")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if playerCtx.Account.Level != 3 {
		t.Errorf("Account.Level = %d, expected 3", playerCtx.Account.Level)
	}
	if playerCtx.Stats.CompletedGames != 1 || playerCtx.Stats.TotalGames != 2 {
		t.Errorf("Stats = %+v", playerCtx.Stats)
	}
	if playerCtx.DailyStreak != 2 {
		t.Errorf("DailyStreak = %d, expected 2", playerCtx.DailyStreak)
	}

	if _, err := loader.Load(ctx, "guest"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Load(guest) error = %v, expected ErrNotFound", err)
	}
}
