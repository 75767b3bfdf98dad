// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package builtin

import "time"

// Raw gameplay events published by the game and shop services.
// Signal types share these names.
const (
	TypeGroupSolved     = "group_solved"
	TypePuzzleCompleted = "puzzle_completed"
	TypeLevelUp         = "level_up"
	TypeRewardAcquired  = "reward_acquired"
)

type GroupSolvedEvent struct {
	UserID     string
	PuzzleID   string
	GroupIndex int
	Streak     int
	Points     int
	IsDaily    bool
	OccurredAt time.Time
}

type PuzzleCompletedEvent struct {
	UserID     string
	PuzzleID   string
	Attempts   int
	Points     int
	IsDaily    bool
	OccurredAt time.Time
}

type LevelUpEvent struct {
	UserID     string
	Level      int
	OccurredAt time.Time
}

// RewardAcquiredEvent is published for purchases and free claims.
type RewardAcquiredEvent struct {
	UserID     string
	RewardID   string
	RewardType string
	Source     string
	OccurredAt time.Time
}
