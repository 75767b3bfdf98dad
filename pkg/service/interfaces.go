// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package service

import (
	"context"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/state"
)

// Store interfaces consumed by the game, shop and pipeline packages.
// The Redis implementations live next to them; tests usually run them on miniredis.

type PuzzleStore interface {
	FindByID(ctx context.Context, id string) (*state.Puzzle, error)
	Create(ctx context.Context, puzzle *state.Puzzle) error
	Count(ctx context.Context) (int, error)
}

type ProgressStore interface {
	Find(ctx context.Context, playerID, puzzleID string) (*state.Progress, error)
	Create(ctx context.Context, progress *state.Progress) error
	Save(ctx context.Context, progress *state.Progress) error
	FindByPlayer(ctx context.Context, playerID string) ([]*state.Progress, error)
}

type AccountStore interface {
	FindByID(ctx context.Context, id string) (*state.Account, error)
	FindByEmail(ctx context.Context, email string) (*state.Account, error)
	FindByUsername(ctx context.Context, username string) (*state.Account, error)
	FindByWallet(ctx context.Context, address string) (*state.Account, error)
	Create(ctx context.Context, account *state.Account) error
	Save(ctx context.Context, account *state.Account) error
}

type RewardStore interface {
	FindByID(ctx context.Context, id string) (*state.Reward, error)
	ListActive(ctx context.Context) ([]*state.Reward, error)
	Count(ctx context.Context) (int, error)
	CreateMany(ctx context.Context, rewards []state.Reward) error
}

type Leaderboard interface {
	AddPoints(ctx context.Context, playerID string, points int) error
	Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	Rank(ctx context.Context, playerID string) (*LeaderboardEntry, int, error)
}

// DailyTracker records the days a player completed the daily puzzle.
type DailyTracker interface {
	RecordCompletion(ctx context.Context, playerID string, day time.Time) error
	CurrentStreak(ctx context.Context, playerID string, today time.Time) (int, error)
}

// WalletVerifier checks that a signature over message was produced by address.
type WalletVerifier interface {
	Verify(ctx context.Context, address, signature, message string) (bool, error)
}

// Minter writes an on-chain reward. Callers treat failures as best-effort.
type Minter interface {
	Mint(ctx context.Context, req MintRequest) (*MintReceipt, error)
}

// LeaderboardEntry is one ranked player. Rank is 1-based.
type LeaderboardEntry struct {
	PlayerID string `json:"playerId"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}

// MintRequest describes a reward to mint for a wallet.
type MintRequest struct {
	Recipient       string `json:"recipient"`
	RewardID        string `json:"rewardId"`
	RewardType      string `json:"rewardType"`
	ContractAddress string `json:"contractAddress,omitempty"`
	TokenID         string `json:"tokenId,omitempty"`
}

// MintReceipt is the chain's answer to a successful mint.
type MintReceipt struct {
	TxHash string `json:"txHash"`
	NFTID  string `json:"nftId,omitempty"`
}
