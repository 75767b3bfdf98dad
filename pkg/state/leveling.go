// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import "math"

const (
	// BaseLevelXP is the XP needed to reach level 2.
	BaseLevelXP = 100
	// LevelScale multiplies the requirement of each further level.
	LevelScale = 1.5
)

// LevelInfo is the progression view of an XP total.
type LevelInfo struct {
	Level          int     `json:"level"`
	CurrentXP      int     `json:"currentXP"`
	LevelStartXP   int     `json:"levelStartXP"`
	XPForNextLevel int     `json:"xpForNextLevel"`
	Progress       float64 `json:"progress"`
}

// LevelThreshold returns the cumulative XP at which level is reached.
func LevelThreshold(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Round(BaseLevelXP * math.Pow(LevelScale, float64(level-2))))
}

// LevelFor computes the level and progress for xp.
func LevelFor(xp int) LevelInfo {
	level := 1
	for xp >= LevelThreshold(level+1) {
		level++
	}

	start := LevelThreshold(level)
	next := LevelThreshold(level + 1)
	progress := 0.0
	if xp > start {
		progress = float64(xp-start) / float64(next-start) * 100
	}

	return LevelInfo{
		Level:          level,
		CurrentXP:      xp,
		LevelStartXP:   start,
		XPForNextLevel: next,
		Progress:       progress,
	}
}

// ApplyXP adds amount to the account and recomputes its level.
// The stored level only moves up; leveledUp reports that it did.
func ApplyXP(account *Account, amount int) (LevelInfo, bool) {
	account.XP += amount
	info := LevelFor(account.XP)

	if info.Level > account.Level {
		account.Level = info.Level
		return info, true
	}
	return info, false
}
