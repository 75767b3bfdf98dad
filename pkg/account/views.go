// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package account

import (
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/state"
)

// Profile is the client view of an account. It never carries the password hash.
type Profile struct {
	ID            string         `json:"id"`
	Username      string         `json:"username"`
	Email         string         `json:"email,omitempty"`
	WalletAddress string         `json:"walletAddress,omitempty"`
	AuthType      state.AuthType `json:"authType"`
	XP            int            `json:"xp"`
	Level         int            `json:"level"`
	TotalPoints   int            `json:"totalPoints"`
	Inventory     map[string]int `json:"inventory"`
	Achievements  []string       `json:"achievements"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func NewProfile(a *state.Account) *Profile {
	return &Profile{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		WalletAddress: a.WalletAddress,
		AuthType:      a.AuthType,
		XP:            a.XP,
		Level:         a.Level,
		TotalPoints:   a.TotalPoints,
		Inventory:     nonNilInventory(a.Inventory),
		Achievements:  nonNilStrings(a.Achievements),
		CreatedAt:     a.CreatedAt,
	}
}

// AuthResult is returned by every sign-in operation.
type AuthResult struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

// Progression is the level view of a player. Unknown players get level 1 with nothing earned.
type Progression struct {
	state.LevelInfo
	XP           int            `json:"xp"`
	TotalPoints  int            `json:"totalPoints"`
	Inventory    map[string]int `json:"inventory"`
	Achievements []string       `json:"achievements"`
}

// XPResult describes an XP award.
type XPResult struct {
	XPAwarded    int      `json:"xpAwarded"`
	LeveledUp    bool     `json:"leveledUp"`
	NewXP        int      `json:"newXP"`
	NewLevel     int      `json:"newLevel"`
	Achievements []string `json:"achievements,omitempty"`
}

func nonNilInventory(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
