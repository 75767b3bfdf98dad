// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"errors"
	"testing"
	"time"
)

func testPuzzle() *Puzzle {
	return &Puzzle{
		ID: "p1",
		Groups: []Group{
			{Name: "A", Words: []string{"a1", "a2", "a3", "a4"}},
			{Name: "B", Words: []string{"b1", "b2", "b3", "b4"}},
			{Name: "C", Words: []string{"c1", "c2", "c3", "c4"}},
			{Name: "D", Words: []string{"d1", "d2", "d3", "d4"}},
		},
	}
}

func TestPointsForStreak(t *testing.T) {
	tests := []struct {
		streak   int
		expected int
	}{
		{0, 100},
		{1, 125},
		{2, 150},
		{3, 175},
		{4, 200},
		{5, 225},
		{9, 225},
	}

	for _, tt := range tests {
		if got := PointsForStreak(tt.streak); got != tt.expected {
			t.Errorf("PointsForStreak(%d) = %d, expected %d", tt.streak, got, tt.expected)
		}
	}
}

func TestEvaluateGuess_MixedSequence(t *testing.T) {
	puzzle := testPuzzle()
	progress := NewProgress("player", puzzle, 0, time.Now())

	guesses := [][]string{
		{"a1", "a2", "a3", "a4"},
		{"b4", "b3", "b2", "b1"},
		{"a1", "b1", "c1", "d1"},
		{"c1", "c2", "c3", "c4"},
		{"d1", "d2", "d3", "d4"},
	}
	expectedStreaks := []int{1, 2, 0, 1, 2}
	expectedAwards := []int{100, 125, 0, 100, 125}

	for i, guess := range guesses {
		outcome, err := EvaluateGuess(puzzle, progress, guess, time.Now())
		if err != nil {
			t.Fatalf("guess %d: unexpected error %v", i, err)
		}
		if progress.Streak != expectedStreaks[i] {
			t.Errorf("guess %d: streak = %d, expected %d", i, progress.Streak, expectedStreaks[i])
		}
		if outcome.PointsEarned != expectedAwards[i] {
			t.Errorf("guess %d: award = %d, expected %d", i, outcome.PointsEarned, expectedAwards[i])
		}
		if i < len(guesses)-1 && progress.IsCompleted {
			t.Errorf("guess %d: completed too early", i)
		}
	}

	if !progress.IsCompleted {
		t.Fatal("expected progress to be completed")
	}
	if progress.CompletedAt == nil {
		t.Error("expected completion time to be stamped")
	}
	if progress.Points != 650 {
		t.Errorf("Points = %d, expected 650", progress.Points)
	}
	if progress.Attempts != 5 {
		t.Errorf("Attempts = %d, expected 5", progress.Attempts)
	}
}

func TestEvaluateGuess_CompletionBonus(t *testing.T) {
	puzzle := testPuzzle()
	progress := NewProgress("player", puzzle, 0, time.Now())

	var last *GuessOutcome
	for _, g := range puzzle.Groups {
		outcome, err := EvaluateGuess(puzzle, progress, g.Words, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last = outcome
	}

	if !last.Completed || last.Bonus != CompletionBonus {
		t.Errorf("last outcome = %+v, expected completion with bonus %d", last, CompletionBonus)
	}
	// 100 + 125 + 150 + 175 + 200
	if progress.Points != 750 {
		t.Errorf("Points = %d, expected 750", progress.Points)
	}
}

func TestEvaluateGuess_SolvedGroupNotCountedTwice(t *testing.T) {
	puzzle := testPuzzle()
	progress := NewProgress("player", puzzle, 0, time.Now())

	if _, err := EvaluateGuess(puzzle, progress, puzzle.Groups[0].Words, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outcome, err := EvaluateGuess(puzzle, progress, puzzle.Groups[0].Words, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Correct {
		t.Error("repeating a solved group should not be correct")
	}
	if len(progress.SolvedGroups) != 1 {
		t.Errorf("SolvedGroups = %v, expected one entry", progress.SolvedGroups)
	}
	if progress.Points != 100 {
		t.Errorf("Points = %d, expected 100", progress.Points)
	}
	if progress.Streak != 0 {
		t.Errorf("Streak = %d, expected 0", progress.Streak)
	}
}

func TestEvaluateGuess_Rejections(t *testing.T) {
	puzzle := testPuzzle()

	tests := []struct {
		name     string
		selected []string
		prepare  func(p *Progress)
		expected error
	}{
		{"three words", []string{"a1", "a2", "a3"}, nil, ErrInvalidSelection},
		{"five words", []string{"a1", "a2", "a3", "a4", "b1"}, nil, ErrInvalidSelection},
		{"duplicate word", []string{"a1", "a1", "a2", "a3"}, nil, ErrInvalidSelection},
		{"empty word", []string{"a1", "", "a2", "a3"}, nil, ErrInvalidSelection},
		{"completed", []string{"a1", "a2", "a3", "a4"}, func(p *Progress) { p.IsCompleted = true }, ErrAlreadyCompleted},
		{"eliminated", []string{"a1", "a2", "a3", "a4"}, func(p *Progress) { p.IsEliminated = true }, ErrEliminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := NewProgress("player", puzzle, 4, time.Now())
			if tt.prepare != nil {
				tt.prepare(progress)
			}

			_, err := EvaluateGuess(puzzle, progress, tt.selected, time.Now())
			if !errors.Is(err, tt.expected) {
				t.Errorf("error = %v, expected %v", err, tt.expected)
			}
			if progress.Attempts != 0 {
				t.Errorf("Attempts = %d, expected no mutation", progress.Attempts)
			}
		})
	}
}

func TestEvaluateGuess_Lives(t *testing.T) {
	puzzle := testPuzzle()
	progress := NewProgress("player", puzzle, 2, time.Now())
	wrong := []string{"a1", "b1", "c1", "d1"}

	outcome, _ := EvaluateGuess(puzzle, progress, wrong, time.Now())
	if !outcome.LifeLost || outcome.Eliminated {
		t.Errorf("first miss outcome = %+v", outcome)
	}
	if progress.Lives != 1 {
		t.Errorf("Lives = %d, expected 1", progress.Lives)
	}

	outcome, _ = EvaluateGuess(puzzle, progress, wrong, time.Now())
	if !outcome.Eliminated || !progress.IsEliminated {
		t.Error("expected elimination at zero lives")
	}

	if _, err := EvaluateGuess(puzzle, progress, puzzle.Groups[0].Words, time.Now()); !errors.Is(err, ErrEliminated) {
		t.Errorf("guess after elimination error = %v, expected %v", err, ErrEliminated)
	}
}

func TestEvaluateGuess_LivesDisabled(t *testing.T) {
	puzzle := testPuzzle()
	progress := NewProgress("player", puzzle, 0, time.Now())

	for i := 0; i < 10; i++ {
		if _, err := EvaluateGuess(puzzle, progress, []string{"a1", "b1", "c1", "d1"}, time.Now()); err != nil {
			t.Fatalf("miss %d: unexpected error %v", i, err)
		}
	}
	if progress.IsEliminated {
		t.Error("progress should never be eliminated when lives are disabled")
	}
}

func TestEvaluateGuess_DoublePoints(t *testing.T) {
	puzzle := testPuzzle()
	progress := NewProgress("player", puzzle, 0, time.Now())
	progress.DoublePointsActive = true

	outcome, err := EvaluateGuess(puzzle, progress, puzzle.Groups[1].Words, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.PointsEarned != 200 {
		t.Errorf("PointsEarned = %d, expected 200", outcome.PointsEarned)
	}
	if progress.DoublePointsActive {
		t.Error("double points should be consumed by the correct guess")
	}
}

func TestResetProgress(t *testing.T) {
	puzzle := testPuzzle()
	progress := NewProgress("player", puzzle, 4, time.Now())
	for _, g := range puzzle.Groups {
		_, _ = EvaluateGuess(puzzle, progress, g.Words, time.Now())
	}

	ResetProgress(progress, time.Now())

	if progress.IsCompleted || progress.CompletedAt != nil {
		t.Error("completion should be cleared")
	}
	if progress.Points != 0 || progress.Streak != 0 || progress.Attempts != 0 {
		t.Errorf("counters not cleared: %+v", progress)
	}
	if len(progress.SolvedGroups) != 0 {
		t.Errorf("SolvedGroups = %v, expected empty", progress.SolvedGroups)
	}
	if progress.Lives != 4 {
		t.Errorf("Lives = %d, expected 4", progress.Lives)
	}
	if FirstUnsolvedGroup(puzzle, progress) != 0 {
		t.Error("expected group 0 to be unsolved after reset")
	}
	if !progress.Rewarded {
		t.Error("Rewarded should survive a reset")
	}

	outcome, err := EvaluateGuess(puzzle, progress, puzzle.Groups[0].Words, time.Now())
	if err != nil {
		t.Fatalf("EvaluateGuess() after reset error = %v", err)
	}
	if !outcome.Correct || !outcome.Replay || outcome.PointsEarned != 100 {
		t.Errorf("outcome = %+v, expected a correct replay worth 100", outcome)
	}
}

func TestResetProgress_PartialPlayIsRewarded(t *testing.T) {
	puzzle := testPuzzle()

	fresh := NewProgress("player", puzzle, 4, time.Now())
	ResetProgress(fresh, time.Now())
	if fresh.Rewarded {
		t.Error("resetting an untouched puzzle should not mark it rewarded")
	}

	partial := NewProgress("player", puzzle, 4, time.Now())
	_, _ = EvaluateGuess(puzzle, partial, puzzle.Groups[2].Words, time.Now())
	ResetProgress(partial, time.Now())
	if !partial.Rewarded {
		t.Error("resetting after a solved group should mark the puzzle rewarded")
	}
}

func TestSummarizeProgress(t *testing.T) {
	records := []*Progress{
		{Points: 650, IsCompleted: true, IsDaily: true},
		{Points: 900, IsCompleted: true},
		{Points: 100},
	}

	stats := SummarizeProgress(records)
	if stats.TotalGames != 3 || stats.CompletedGames != 2 || stats.DailyCompleted != 1 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.TotalPoints != 1650 || stats.BestScore != 900 {
		t.Errorf("points = %+v", stats)
	}
	if stats.CompletionRate != 66.67 {
		t.Errorf("CompletionRate = %v, expected 66.67", stats.CompletionRate)
	}

	if empty := SummarizeProgress(nil); empty.CompletionRate != 0 || empty.TotalGames != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}
