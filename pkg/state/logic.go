// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	GroupsPerPuzzle = 4
	WordsPerGroup   = 4

	BaseGroupPoints = 100
	StreakStep      = 0.25
	MaxStreakSteps  = 5
	CompletionBonus = 200
)

var (
	ErrInvalidSelection = errors.New("exactly 4 distinct words must be selected")
	ErrAlreadyCompleted = errors.New("puzzle already completed")
	ErrEliminated       = errors.New("no lives left for this puzzle")
)

// GuessOutcome describes what a single guess did to a progress record.
type GuessOutcome struct {
	Correct      bool
	GroupIndex   int
	PointsEarned int
	Bonus        int
	Completed    bool
	LifeLost     bool
	Eliminated   bool
	// Replay is set when the puzzle already paid out to this player.
	Replay bool
}

// NewProgress creates an empty progress record. maxLives of 0 disables lives.
func NewProgress(playerID string, puzzle *Puzzle, maxLives int, now time.Time) *Progress {
	return &Progress{
		PlayerID:     playerID,
		PuzzleID:     puzzle.ID,
		SolvedGroups: []int{},
		Lives:        maxLives,
		MaxLives:     maxLives,
		IsDaily:      puzzle.IsDaily,
		StartedAt:    now,
		UpdatedAt:    now,
	}
}

// PointsForStreak returns the award for a correct group found while on the given streak.
func PointsForStreak(streak int) int {
	steps := min(streak, MaxStreakSteps)
	if steps < 0 {
		steps = 0
	}
	return int(math.Round(BaseGroupPoints * (1 + float64(steps)*StreakStep)))
}

// IsSolved reports whether group idx is already solved.
func (p *Progress) IsSolved(idx int) bool {
	for _, solved := range p.SolvedGroups {
		if solved == idx {
			return true
		}
	}
	return false
}

// EvaluateGuess applies one guess to progress. The selection is validated before any
// mutation; on success attempts always increase and the caller must persist progress.
func EvaluateGuess(puzzle *Puzzle, progress *Progress, selected []string, now time.Time) (*GuessOutcome, error) {
	if !validSelection(selected) {
		return nil, ErrInvalidSelection
	}
	if progress.IsCompleted {
		return nil, ErrAlreadyCompleted
	}
	if progress.IsEliminated {
		return nil, ErrEliminated
	}

	progress.Attempts++
	progress.UpdatedAt = now

	chosen := make(map[string]struct{}, len(selected))
	for _, w := range selected {
		chosen[w] = struct{}{}
	}

	for idx, group := range puzzle.Groups {
		if progress.IsSolved(idx) || !containsAll(chosen, group.Words) {
			continue
		}

		award := PointsForStreak(progress.Streak)
		if progress.DoublePointsActive {
			award *= 2
			progress.DoublePointsActive = false
		}
		progress.Points += award
		progress.Streak++
		progress.SolvedGroups = append(progress.SolvedGroups, idx)

		outcome := &GuessOutcome{Correct: true, GroupIndex: idx, PointsEarned: award, Replay: progress.Rewarded}
		if len(progress.SolvedGroups) == len(puzzle.Groups) {
			completedAt := now
			progress.Rewarded = true
			progress.IsCompleted = true
			progress.CompletedAt = &completedAt
			progress.Points += CompletionBonus
			outcome.Completed = true
			outcome.Bonus = CompletionBonus
		}

		logrus.Debugf("player %s solved group %d of puzzle %s (streak=%d, award=%d)",
			progress.PlayerID, idx, puzzle.ID, progress.Streak, award)
		return outcome, nil
	}

	progress.Streak = 0
	outcome := &GuessOutcome{Correct: false, GroupIndex: -1, Replay: progress.Rewarded}
	if progress.MaxLives > 0 {
		progress.Lives--
		outcome.LifeLost = true
		if progress.Lives <= 0 {
			progress.Lives = 0
			progress.IsEliminated = true
			outcome.Eliminated = true
		}
	}

	logrus.Debugf("player %s missed on puzzle %s (attempts=%d, lives=%d)",
		progress.PlayerID, puzzle.ID, progress.Attempts, progress.Lives)
	return outcome, nil
}

// ResetProgress returns a progress record to its initial state, keeping its
// identity. Rewarded is never cleared.
func ResetProgress(progress *Progress, now time.Time) {
	if len(progress.SolvedGroups) > 0 {
		progress.Rewarded = true
	}
	progress.SolvedGroups = []int{}
	progress.Points = 0
	progress.Streak = 0
	progress.Attempts = 0
	progress.Lives = progress.MaxLives
	progress.IsEliminated = false
	progress.IsCompleted = false
	progress.CompletedAt = nil
	progress.DoublePointsActive = false
	progress.HintsUsed = 0
	progress.StartedAt = now
	progress.UpdatedAt = now
}

// FirstUnsolvedGroup returns the lowest unsolved group index, or -1.
func FirstUnsolvedGroup(puzzle *Puzzle, progress *Progress) int {
	for idx := range puzzle.Groups {
		if !progress.IsSolved(idx) {
			return idx
		}
	}
	return -1
}

// ValidateSelection checks a selection without touching any progress record.
func ValidateSelection(selected []string) error {
	if !validSelection(selected) {
		return ErrInvalidSelection
	}
	return nil
}

func validSelection(selected []string) bool {
	if len(selected) != WordsPerGroup {
		return false
	}
	seen := make(map[string]struct{}, len(selected))
	for _, w := range selected {
		if w == "" {
			return false
		}
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}
	}
	return true
}

func containsAll(set map[string]struct{}, words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
