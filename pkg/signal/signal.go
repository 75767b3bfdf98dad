// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package signal

import (
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/state"
)

// Signal is a normalized gameplay event enriched with player context.
// Signals are produced by the Processor and consumed by the rule engine.
type Signal interface {
	// Type returns the signal type identifier (e.g., "puzzle_completed").
	Type() string

	// UserID returns the account the signal belongs to.
	UserID() string

	Timestamp() time.Time

	// Metadata exposes signal fields to rules without type assertions.
	Metadata() map[string]interface{}

	Context() *PlayerContext
}

// PlayerContext is the account and progress snapshot rules decide on.
type PlayerContext struct {
	UserID      string
	Account     *state.Account
	Stats       state.PlayerStats
	DailyStreak int
	SessionInfo map[string]interface{}
}

// BaseSignal implements Signal for embedding in concrete signal types.
type BaseSignal struct {
	signalType string
	userID     string
	timestamp  time.Time
	metadata   map[string]interface{}
	context    *PlayerContext
}

// NewBaseSignal creates a BaseSignal.
func NewBaseSignal(signalType, userID string, timestamp time.Time, metadata map[string]interface{}, context *PlayerContext) BaseSignal {
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return BaseSignal{
		signalType: signalType,
		userID:     userID,
		timestamp:  timestamp,
		metadata:   metadata,
		context:    context,
	}
}

func (s *BaseSignal) Type() string                     { return s.signalType }
func (s *BaseSignal) UserID() string                   { return s.userID }
func (s *BaseSignal) Timestamp() time.Time             { return s.timestamp }
func (s *BaseSignal) Metadata() map[string]interface{} { return s.metadata }
func (s *BaseSignal) Context() *PlayerContext          { return s.context }
