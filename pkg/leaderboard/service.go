// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package leaderboard

import (
	"context"
	"errors"

	"github.com/AccelByte/extend-word-groups/pkg/service"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Entry is one ranked player. Guests are shown by their identifier at level 1.
type Entry struct {
	PlayerIdentifier string `json:"playerIdentifier"`
	DisplayName      string `json:"displayName"`
	Score            int    `json:"score"`
	Level            int    `json:"level"`
	Rank             int    `json:"rank"`
}

// PlayerRank is a player's entry and the number of ranked players. Rank 0 means unranked.
type PlayerRank struct {
	Entry
	TotalPlayers int `json:"totalPlayers"`
}

type Service struct {
	board    service.Leaderboard
	accounts service.AccountStore
}

func NewService(board service.Leaderboard, accounts service.AccountStore) *Service {
	return &Service{board: board, accounts: accounts}
}

// Global returns the top players. limit is clamped to [1, MaxLimit]; 0 means DefaultLimit.
func (s *Service) Global(ctx context.Context, limit int) ([]Entry, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	top, err := s.board.Top(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(top))
	for _, e := range top {
		entry, err := s.describe(ctx, e)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Service) Rank(ctx context.Context, identifier string) (*PlayerRank, error) {
	if identifier == "" {
		return nil, service.NewError(service.ErrValidation, "player identifier is required")
	}

	e, total, err := s.board.Rank(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if e == nil {
		e = &service.LeaderboardEntry{PlayerID: identifier}
	}

	entry, err := s.describe(ctx, *e)
	if err != nil {
		return nil, err
	}
	return &PlayerRank{Entry: entry, TotalPlayers: total}, nil
}

func (s *Service) describe(ctx context.Context, e service.LeaderboardEntry) (Entry, error) {
	entry := Entry{
		PlayerIdentifier: e.PlayerID,
		DisplayName:      e.PlayerID,
		Score:            e.Score,
		Level:            1,
		Rank:             e.Rank,
	}

	account, err := s.accounts.FindByID(ctx, e.PlayerID)
	switch {
	case err == nil:
		entry.DisplayName = account.Username
		entry.Level = account.Level
	case !errors.Is(err, service.ErrNotFound):
		return Entry{}, err
	}
	return entry, nil
}
