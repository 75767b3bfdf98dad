// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package signal

import (
	"context"
	"sync"
)

// EventProcessor turns one kind of raw gameplay event into a signal.
type EventProcessor interface {
	// EventType returns the event type handled, e.g. "group_solved".
	EventType() string

	// Process converts the event, loading player context through contextLoader.
	Process(ctx context.Context, event interface{}, contextLoader PlayerContextLoader) (Signal, error)
}

// PlayerContextLoader provides player context for event processing.
type PlayerContextLoader interface {
	Load(ctx context.Context, userID string) (*PlayerContext, error)
}

// EventProcessorRegistry maps event types to processors.
type EventProcessorRegistry struct {
	mu         sync.RWMutex
	processors map[string]EventProcessor
}

func NewEventProcessorRegistry() *EventProcessorRegistry {
	return &EventProcessorRegistry{
		processors: make(map[string]EventProcessor),
	}
}

// Register adds processor, replacing any processor for the same event type.
func (r *EventProcessorRegistry) Register(processor EventProcessor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processors[processor.EventType()] = processor
}

// Get returns the processor for eventType, or nil.
func (r *EventProcessorRegistry) Get(eventType string) EventProcessor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.processors[eventType]
}

func (r *EventProcessorRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.processors)
}
