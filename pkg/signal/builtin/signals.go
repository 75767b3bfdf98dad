// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import (
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/signal"
	"github.com/AccelByte/extend-word-groups/pkg/state"
)

// GroupSolvedSignal is emitted for every correct group.
type GroupSolvedSignal struct {
	signal.BaseSignal
	PuzzleID string
	Streak   int
	IsDaily  bool
}

func NewGroupSolvedSignal(e *GroupSolvedEvent, context *signal.PlayerContext) *GroupSolvedSignal {
	metadata := map[string]interface{}{
		"puzzle_id":   e.PuzzleID,
		"group_index": e.GroupIndex,
		"streak":      e.Streak,
		"points":      e.Points,
	}
	return &GroupSolvedSignal{
		BaseSignal: signal.NewBaseSignal(TypeGroupSolved, e.UserID, e.OccurredAt, metadata, context),
		PuzzleID:   e.PuzzleID,
		Streak:     e.Streak,
		IsDaily:    e.IsDaily,
	}
}

// PuzzleCompletedSignal is emitted when the last group of a puzzle is solved.
type PuzzleCompletedSignal struct {
	signal.BaseSignal
	PuzzleID string
	Attempts int
	Points   int
	IsDaily  bool
}

func NewPuzzleCompletedSignal(e *PuzzleCompletedEvent, context *signal.PlayerContext) *PuzzleCompletedSignal {
	metadata := map[string]interface{}{
		"puzzle_id": e.PuzzleID,
		"attempts":  e.Attempts,
		"points":    e.Points,
		"is_daily":  e.IsDaily,
	}
	return &PuzzleCompletedSignal{
		BaseSignal: signal.NewBaseSignal(TypePuzzleCompleted, e.UserID, e.OccurredAt, metadata, context),
		PuzzleID:   e.PuzzleID,
		Attempts:   e.Attempts,
		Points:     e.Points,
		IsDaily:    e.IsDaily,
	}
}

// Mistakes is the number of wrong guesses made on the puzzle.
func (s *PuzzleCompletedSignal) Mistakes() int {
	return s.Attempts - state.GroupsPerPuzzle
}

// LevelUpSignal is emitted when an account reaches a new level.
type LevelUpSignal struct {
	signal.BaseSignal
	Level int
}

func NewLevelUpSignal(e *LevelUpEvent, context *signal.PlayerContext) *LevelUpSignal {
	return &LevelUpSignal{
		BaseSignal: signal.NewBaseSignal(TypeLevelUp, e.UserID, e.OccurredAt, map[string]interface{}{"level": e.Level}, context),
		Level:      e.Level,
	}
}

// RewardAcquiredSignal is emitted when an item lands in an inventory.
type RewardAcquiredSignal struct {
	signal.BaseSignal
	RewardID string
	Source   string
}

func NewRewardAcquiredSignal(e *RewardAcquiredEvent, context *signal.PlayerContext) *RewardAcquiredSignal {
	metadata := map[string]interface{}{
		"reward_id":   e.RewardID,
		"reward_type": e.RewardType,
		"source":      e.Source,
	}
	return &RewardAcquiredSignal{
		BaseSignal: signal.NewBaseSignal(TypeRewardAcquired, e.UserID, e.OccurredAt, metadata, context),
		RewardID:   e.RewardID,
		Source:     e.Source,
	}
}

func occurredAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
