// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package game

import (
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/puzzle"
	"github.com/AccelByte/extend-word-groups/pkg/state"
)

// GroupView is a solved group as shown to the player.
type GroupView struct {
	Index int      `json:"index"`
	Name  string   `json:"name"`
	Color string   `json:"color"`
	Words []string `json:"words"`
}

// PuzzleView is a puzzle without its answers. Only groups the player solved are revealed.
type PuzzleView struct {
	ID      string      `json:"id"`
	Words   []string    `json:"words"`
	Solved  []GroupView `json:"solved"`
	IsDaily bool        `json:"isDaily"`
	Date    string      `json:"date,omitempty"`
}

func newPuzzleView(p *state.Puzzle, progress *state.Progress) *PuzzleView {
	view := &PuzzleView{
		ID:      p.ID,
		Words:   puzzle.Board(p),
		Solved:  []GroupView{},
		IsDaily: p.IsDaily,
		Date:    p.Date,
	}
	if progress == nil {
		return view
	}
	for _, idx := range progress.SolvedGroups {
		if idx < 0 || idx >= len(p.Groups) {
			continue
		}
		g := p.Groups[idx]
		view.Solved = append(view.Solved, GroupView{Index: idx, Name: g.Name, Color: g.Color, Words: g.Words})
	}
	return view
}

type ProgressView struct {
	PuzzleID     string     `json:"puzzleId"`
	SolvedGroups []int      `json:"solvedGroups"`
	Points       int        `json:"points"`
	Streak       int        `json:"streak"`
	Attempts     int        `json:"attempts"`
	Lives        int        `json:"lives"`
	MaxLives     int        `json:"maxLives"`
	IsCompleted  bool       `json:"isCompleted"`
	IsEliminated bool       `json:"isEliminated"`
	HintsUsed    int        `json:"hintsUsed"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

func newProgressView(p *state.Progress) *ProgressView {
	solved := p.SolvedGroups
	if solved == nil {
		solved = []int{}
	}
	return &ProgressView{
		PuzzleID:     p.PuzzleID,
		SolvedGroups: solved,
		Points:       p.Points,
		Streak:       p.Streak,
		Attempts:     p.Attempts,
		Lives:        p.Lives,
		MaxLives:     p.MaxLives,
		IsCompleted:  p.IsCompleted,
		IsEliminated: p.IsEliminated,
		HintsUsed:    p.HintsUsed,
		StartedAt:    p.StartedAt,
		CompletedAt:  p.CompletedAt,
	}
}

// Game is a puzzle together with the caller's progress on it.
type Game struct {
	Puzzle   *PuzzleView   `json:"game"`
	Progress *ProgressView `json:"progress"`
}

// GuessResult is the outcome of one guess.
type GuessResult struct {
	Correct      bool     `json:"correct"`
	GroupIndex   int      `json:"groupIndex"`
	GroupName    string   `json:"groupName,omitempty"`
	GroupColor   string   `json:"groupColor,omitempty"`
	GroupWords   []string `json:"groupWords,omitempty"`
	PointsEarned int      `json:"pointsEarned"`
	TotalPoints  int      `json:"totalPoints"`
	Streak       int      `json:"streak"`
	SolvedGroups []int    `json:"solvedGroups"`
	IsCompleted  bool     `json:"isCompleted"`
	IsDaily      bool     `json:"isDaily"`
	Lives        int      `json:"lives"`
	IsEliminated bool     `json:"isEliminated"`
	XPAwarded    int      `json:"xpAwarded"`
	LevelUp      bool     `json:"levelUp"`
	Achievements []string `json:"achievements,omitempty"`
}

// Stats is the global puzzle count, plus the caller's totals when signed in.
type Stats struct {
	GameCount int                `json:"gameCount"`
	UserStats *state.PlayerStats `json:"userStats,omitempty"`
}

type ActiveGame struct {
	ID           string    `json:"id"`
	SolvedGroups []int     `json:"solvedGroups"`
	Points       int       `json:"points"`
	Streak       int       `json:"streak"`
	Lives        int       `json:"lives"`
	IsDaily      bool      `json:"isDaily"`
	StartedAt    time.Time `json:"timeStarted"`
}

type RecentGame struct {
	ID          string     `json:"id"`
	IsCompleted bool       `json:"isCompleted"`
	Points      int        `json:"points"`
	StartedAt   time.Time  `json:"timeStarted"`
	CompletedAt *time.Time `json:"timeCompleted,omitempty"`
}

type PlayerStats struct {
	state.PlayerStats
	RecentGames []RecentGame `json:"recentGames"`
}
