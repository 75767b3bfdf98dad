// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package game

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/account"
	"github.com/AccelByte/extend-word-groups/pkg/auth"
	"github.com/AccelByte/extend-word-groups/pkg/common"
	"github.com/AccelByte/extend-word-groups/pkg/metrics"
	"github.com/AccelByte/extend-word-groups/pkg/pipeline"
	"github.com/AccelByte/extend-word-groups/pkg/puzzle"
	"github.com/AccelByte/extend-word-groups/pkg/service"
	signalBuiltin "github.com/AccelByte/extend-word-groups/pkg/signal/builtin"
	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/sirupsen/logrus"
)

const (
	GroupXP      = 10
	CompletionXP = 50

	recentGamesLimit = 5
)

type Config struct {
	// MaxLives of 0 disables lives.
	MaxLives int
	// Location decides which calendar day the daily puzzle belongs to.
	Location *time.Location
}

// Service runs puzzles and guesses for players and anonymous guests.
type Service struct {
	puzzles     service.PuzzleStore
	progress    service.ProgressStore
	leaderboard service.Leaderboard
	daily       service.DailyTracker
	generator   *puzzle.Generator
	accounts    *account.Service
	events      pipeline.Publisher
	maxLives    int
	location    *time.Location
	now         func() time.Time
}

type Dependencies struct {
	Puzzles     service.PuzzleStore
	Progress    service.ProgressStore
	Leaderboard service.Leaderboard
	Daily       service.DailyTracker
	Generator   *puzzle.Generator
	Accounts    *account.Service
	Events      pipeline.Publisher
}

func NewService(deps Dependencies, cfg Config) *Service {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Service{
		puzzles:     deps.Puzzles,
		progress:    deps.Progress,
		leaderboard: deps.Leaderboard,
		daily:       deps.Daily,
		generator:   deps.Generator,
		accounts:    deps.Accounts,
		events:      deps.Events,
		maxLives:    cfg.MaxLives,
		location:    location,
		now:         time.Now,
	}
}

func (s *Service) today() time.Time {
	return s.now().In(s.location)
}

// puzzleDay is the calendar day a daily puzzle belongs to, which can differ
// from today when it is finished after midnight.
func (s *Service) puzzleDay(p *state.Puzzle) time.Time {
	day, err := time.ParseInLocation(common.DateLayout, p.Date, s.location)
	if err != nil {
		logrus.Warnf("daily puzzle %s has unparsable date %q: %v", p.ID, p.Date, err)
		return s.today()
	}
	return day
}

// NewPractice creates a practice puzzle and an empty progress record for the player.
func (s *Service) NewPractice(ctx context.Context, playerID string) (*Game, error) {
	p := s.generator.Practice(s.now())
	if err := s.puzzles.Create(ctx, p); err != nil {
		return nil, err
	}

	progress, err := s.findOrCreateProgress(ctx, playerID, p)
	if err != nil {
		return nil, err
	}

	logrus.Infof("player %s started practice puzzle %s", playerID, p.ID)
	return &Game{Puzzle: newPuzzleView(p, progress), Progress: newProgressView(progress)}, nil
}

// Daily returns today's puzzle, creating it on first request of the day.
func (s *Service) Daily(ctx context.Context, playerID string) (*Game, error) {
	p, err := s.dailyPuzzle(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := s.findOrCreateProgress(ctx, playerID, p)
	if err != nil {
		return nil, err
	}
	return &Game{Puzzle: newPuzzleView(p, progress), Progress: newProgressView(progress)}, nil
}

func (s *Service) dailyPuzzle(ctx context.Context) (*state.Puzzle, error) {
	today := s.today()
	id := puzzle.DailyID(today)

	existing, err := s.puzzles.FindByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, service.ErrNotFound) {
		return nil, err
	}

	p := s.generator.Daily(today)
	err = s.puzzles.Create(ctx, p)
	if errors.Is(err, service.ErrConflict) {
		// another request created it first
		return s.puzzles.FindByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	logrus.Infof("created daily puzzle %s", p.ID)
	return p, nil
}

func (s *Service) findOrCreateProgress(ctx context.Context, playerID string, p *state.Puzzle) (*state.Progress, error) {
	progress, err := s.progress.Find(ctx, playerID, p.ID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, service.ErrNotFound) {
		return nil, err
	}

	progress = state.NewProgress(playerID, p, s.maxLives, s.now())
	err = s.progress.Create(ctx, progress)
	if errors.Is(err, service.ErrConflict) {
		return s.progress.Find(ctx, playerID, p.ID)
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// SubmitGuess evaluates a four word selection against a puzzle. Leaderboard,
// XP and achievement updates are best-effort: their failures never fail the guess.
func (s *Service) SubmitGuess(ctx context.Context, identity auth.Identity, puzzleID string, words []string) (*GuessResult, error) {
	if puzzleID == "" {
		return nil, service.NewError(service.ErrValidation, "puzzle id is required")
	}
	if err := state.ValidateSelection(words); err != nil {
		return nil, service.NewError(service.ErrValidation, "%s", err.Error())
	}

	p, err := s.puzzles.FindByID(ctx, puzzleID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, service.NewError(service.ErrNotFound, "puzzle not found")
	}
	if err != nil {
		return nil, err
	}

	progress, err := s.findOrCreateProgress(ctx, identity.PlayerID, p)
	if err != nil {
		return nil, err
	}

	outcome, err := state.EvaluateGuess(p, progress, words, s.now())
	if err != nil {
		return nil, service.NewError(service.ErrValidation, "%s", err.Error())
	}
	if err := s.progress.Save(ctx, progress); err != nil {
		return nil, err
	}
	metrics.ObserveGuess(outcome.Correct)

	result := &GuessResult{
		Correct:      outcome.Correct,
		GroupIndex:   outcome.GroupIndex,
		PointsEarned: outcome.PointsEarned,
		TotalPoints:  progress.Points,
		Streak:       progress.Streak,
		SolvedGroups: progress.SolvedGroups,
		IsCompleted:  progress.IsCompleted,
		IsDaily:      p.IsDaily,
		Lives:        progress.Lives,
		IsEliminated: progress.IsEliminated,
	}
	if !outcome.Correct {
		return result, nil
	}

	group := p.Groups[outcome.GroupIndex]
	result.GroupName = group.Name
	result.GroupColor = group.Color
	result.GroupWords = group.Words

	if outcome.Completed {
		metrics.ObserveCompletion(p.IsDaily)
	}
	if outcome.Replay {
		logrus.Debugf("replay of puzzle %s by %s earns no rewards", p.ID, identity.PlayerID)
		return result, nil
	}

	earned := outcome.PointsEarned + outcome.Bonus
	if err := s.leaderboard.AddPoints(ctx, identity.PlayerID, earned); err != nil {
		logrus.Warnf("failed to credit leaderboard for %s: %v", identity.PlayerID, err)
	}

	if identity.Authenticated() {
		s.rewardAccount(ctx, identity.AccountID, p, progress, outcome, result)
	}
	return result, nil
}

func (s *Service) rewardAccount(ctx context.Context, accountID string, p *state.Puzzle, progress *state.Progress, outcome *state.GuessOutcome, result *GuessResult) {
	xp := GroupXP
	if outcome.Completed {
		xp += CompletionXP
	}
	if award, err := s.accounts.AwardXP(ctx, accountID, xp); err != nil {
		logrus.Warnf("failed to award XP to %s: %v", accountID, err)
	} else {
		result.XPAwarded = award.XPAwarded
		result.LevelUp = award.LeveledUp
		result.Achievements = append(result.Achievements, award.Achievements...)
	}

	if _, err := s.accounts.AwardPoints(ctx, accountID, outcome.PointsEarned+outcome.Bonus); err != nil {
		logrus.Warnf("failed to award points to %s: %v", accountID, err)
	}

	now := s.now()
	result.Achievements = append(result.Achievements, pipeline.Publish(ctx, s.events, signalBuiltin.TypeGroupSolved, &signalBuiltin.GroupSolvedEvent{
		UserID:     accountID,
		PuzzleID:   p.ID,
		GroupIndex: outcome.GroupIndex,
		Streak:     progress.Streak,
		Points:     outcome.PointsEarned,
		IsDaily:    p.IsDaily,
		OccurredAt: now,
	})...)

	if !outcome.Completed {
		return
	}

	if p.IsDaily && s.daily != nil {
		if err := s.daily.RecordCompletion(ctx, accountID, s.puzzleDay(p)); err != nil {
			logrus.Warnf("failed to record daily completion for %s: %v", accountID, err)
		}
	}

	result.Achievements = append(result.Achievements, pipeline.Publish(ctx, s.events, signalBuiltin.TypePuzzleCompleted, &signalBuiltin.PuzzleCompletedEvent{
		UserID:     accountID,
		PuzzleID:   p.ID,
		Attempts:   progress.Attempts,
		Points:     progress.Points,
		IsDaily:    p.IsDaily,
		OccurredAt: now,
	})...)
}

// Stats returns the number of retained puzzles and, for signed in players, their totals.
func (s *Service) Stats(ctx context.Context, identity auth.Identity) (*Stats, error) {
	count, err := s.puzzles.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{GameCount: count}
	if identity.Authenticated() {
		records, err := s.progress.FindByPlayer(ctx, identity.AccountID)
		if err != nil {
			return nil, err
		}
		summary := state.SummarizeProgress(records)
		stats.UserStats = &summary
	}
	return stats, nil
}

// ActiveGames lists puzzles the player can still play.
func (s *Service) ActiveGames(ctx context.Context, playerID string) ([]ActiveGame, error) {
	records, err := s.progress.FindByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	active := []ActiveGame{}
	for _, p := range records {
		if p.IsCompleted || p.IsEliminated {
			continue
		}
		active = append(active, ActiveGame{
			ID:           p.PuzzleID,
			SolvedGroups: p.SolvedGroups,
			Points:       p.Points,
			Streak:       p.Streak,
			Lives:        p.Lives,
			IsDaily:      p.IsDaily,
			StartedAt:    p.StartedAt,
		})
	}
	return active, nil
}

// PlayerStats summarizes every record of the player and lists the most recently started games.
func (s *Service) PlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	records, err := s.progress.FindByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})

	recent := []RecentGame{}
	for i, p := range records {
		if i == recentGamesLimit {
			break
		}
		recent = append(recent, RecentGame{
			ID:          p.PuzzleID,
			IsCompleted: p.IsCompleted,
			Points:      p.Points,
			StartedAt:   p.StartedAt,
			CompletedAt: p.CompletedAt,
		})
	}

	return &PlayerStats{PlayerStats: state.SummarizeProgress(records), RecentGames: recent}, nil
}

// Reset clears the player's progress on a puzzle. A puzzle that already paid
// out can be replayed but earns no further XP, points or leaderboard score.
func (s *Service) Reset(ctx context.Context, playerID, puzzleID string) error {
	progress, err := s.progress.Find(ctx, playerID, puzzleID)
	if errors.Is(err, service.ErrNotFound) {
		return service.NewError(service.ErrNotFound, "game progress not found")
	}
	if err != nil {
		return err
	}

	state.ResetProgress(progress, s.now())
	if err := s.progress.Save(ctx, progress); err != nil {
		return err
	}
	logrus.Infof("player %s reset puzzle %s", playerID, puzzleID)
	return nil
}
