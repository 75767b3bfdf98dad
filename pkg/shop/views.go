// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package shop

import "github.com/AccelByte/extend-word-groups/pkg/state"

type PurchaseResult struct {
	Reward          *state.Reward `json:"reward"`
	Quantity        int           `json:"quantity"`
	RemainingPoints int           `json:"remainingPoints"`
	TxHash          string        `json:"txHash,omitempty"`
	Achievements    []string      `json:"achievements,omitempty"`
}

type ClaimResult struct {
	Reward       *state.Reward `json:"reward"`
	Quantity     int           `json:"quantity"`
	Period       string        `json:"period"`
	PeriodKey    string        `json:"periodKey"`
	TxHash       string        `json:"txHash,omitempty"`
	Achievements []string      `json:"achievements,omitempty"`
}

// InventoryItem is an owned item with its catalog metadata.
type InventoryItem struct {
	ItemID      string           `json:"itemId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        state.RewardType `json:"type,omitempty"`
	Quantity    int              `json:"quantity"`
}

type UseResult struct {
	ItemID        string `json:"itemId"`
	EffectApplied bool   `json:"effectApplied"`
	Effect        string `json:"effect"`
	Word          string `json:"word,omitempty"`
	Remaining     int    `json:"remaining"`
}
