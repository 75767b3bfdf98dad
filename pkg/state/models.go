// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"time"
)

// Group is one set of four related words inside a puzzle.
type Group struct {
	Name  string   `json:"name"`
	Color string   `json:"color"`
	Words []string `json:"words"`
}

// Puzzle is a daily or practice challenge of four groups.
type Puzzle struct {
	ID        string    `json:"id"`
	Groups    []Group   `json:"groups"`
	Seed      int64     `json:"seed"`
	IsDaily   bool      `json:"isDaily"`
	Date      string    `json:"date,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Progress is one player's mutable state against one puzzle.
// (PlayerID, PuzzleID) is unique.
type Progress struct {
	PlayerID           string     `json:"playerId"`
	PuzzleID           string     `json:"puzzleId"`
	SolvedGroups       []int      `json:"solvedGroups"`
	Points             int        `json:"points"`
	Streak             int        `json:"streak"`
	Attempts           int        `json:"attempts"`
	Lives              int        `json:"lives"`
	MaxLives           int        `json:"maxLives"`
	IsEliminated       bool       `json:"isEliminated"`
	IsCompleted        bool       `json:"isCompleted"`
	IsDaily            bool       `json:"isDaily"`
	DoublePointsActive bool       `json:"doublePointsActive"`
	HintsUsed          int        `json:"hintsUsed"`
	// Rewarded is set once a play has paid out, on completion or when a reset
	// discards solved groups. It survives resets: replays only score locally.
	Rewarded           bool       `json:"rewarded"`
	StartedAt          time.Time  `json:"startedAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// AuthType tells how an account signs in.
type AuthType string

const (
	AuthTypePassword AuthType = "password"
	AuthTypeWallet   AuthType = "wallet"
)

// Account is a persistent player identity.
type Account struct {
	ID            string            `json:"id"`
	Username      string            `json:"username"`
	Email         string            `json:"email,omitempty"`
	PasswordHash  string            `json:"passwordHash,omitempty"`
	WalletAddress string            `json:"walletAddress,omitempty"`
	AuthType      AuthType          `json:"authType"`
	XP            int               `json:"xp"`
	Level         int               `json:"level"`
	TotalPoints   int               `json:"totalPoints"`
	Inventory     map[string]int    `json:"inventory"`
	Achievements  []string          `json:"achievements"`
	Claims        map[string]string `json:"claims"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastLoginAt   time.Time         `json:"lastLoginAt"`
}

// HasAchievement reports whether the achievement is already unlocked.
func (a *Account) HasAchievement(id string) bool {
	for _, existing := range a.Achievements {
		if existing == id {
			return true
		}
	}
	return false
}

// RewardType classifies shop items.
type RewardType string

const (
	RewardTypeTheme      RewardType = "theme"
	RewardTypeConsumable RewardType = "consumable"
	RewardTypeNFT        RewardType = "nft"
	RewardTypeToken      RewardType = "token"
)

// Claim periods for free rewards.
const (
	ClaimPeriodDaily  = "daily"
	ClaimPeriodWeekly = "weekly"
)

// BlockchainInfo describes the on-chain side of a reward.
type BlockchainInfo struct {
	IsOnChain       bool   `json:"isOnChain" yaml:"isOnChain"`
	ContractAddress string `json:"contractAddress,omitempty" yaml:"contractAddress"`
	TokenID         string `json:"tokenId,omitempty" yaml:"tokenId"`
}

// Reward is a shop catalog entry.
type Reward struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	Description   string         `json:"description" yaml:"description"`
	Type          RewardType     `json:"type" yaml:"type"`
	Cost          int            `json:"cost" yaml:"cost"`
	LevelRequired int            `json:"levelRequired" yaml:"levelRequired"`
	ClaimPeriod   string         `json:"claimPeriod,omitempty" yaml:"claimPeriod"`
	Amount        float64        `json:"amount,omitempty" yaml:"amount"`
	Active        bool           `json:"active" yaml:"active"`
	Blockchain    BlockchainInfo `json:"blockchain" yaml:"blockchain"`
}

// PlayerStats aggregates a player's progress records.
type PlayerStats struct {
	TotalGames     int     `json:"totalGames"`
	CompletedGames int     `json:"completedGames"`
	DailyCompleted int     `json:"dailyCompleted"`
	TotalPoints    int     `json:"totalPoints"`
	BestScore      int     `json:"bestScore"`
	CompletionRate float64 `json:"completionRate"`
}
