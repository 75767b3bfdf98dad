// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rule

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds rule instances keyed by ID. Safe for concurrent use.
type Registry struct {
	rules map[string]Rule
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// Register adds a rule. Duplicate IDs are rejected.
func (r *Registry) Register(rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[rule.ID()]; exists {
		return fmt.Errorf("rule %s already registered", rule.ID())
	}
	r.rules[rule.ID()] = rule
	return nil
}

// Get returns nil if the rule doesn't exist.
func (r *Registry) Get(ruleID string) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules[ruleID]
}

// GetBySignalType returns enabled rules handling the signal type, ordered by ID
// so that evaluation is deterministic.
func (r *Registry) GetBySignalType(signalType string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matching []Rule
	for _, rule := range r.rules {
		if !rule.Config().Enabled {
			continue
		}
		types := rule.SignalTypes()
		if len(types) == 0 {
			matching = append(matching, rule)
			continue
		}
		for _, st := range types {
			if st == signalType {
				matching = append(matching, rule)
				break
			}
		}
	}

	sort.Slice(matching, func(i, j int) bool { return matching[i].ID() < matching[j].ID() })
	return matching
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}
