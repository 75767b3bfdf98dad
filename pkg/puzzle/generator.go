// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package puzzle

import (
	"fmt"
	"time"

	"github.com/AccelByte/extend-word-groups/pkg/common"
	"github.com/AccelByte/extend-word-groups/pkg/state"

	"github.com/google/uuid"
)

// DailyIDPrefix prefixes the id of every daily puzzle.
const DailyIDPrefix = "daily-"

// Generator builds puzzles from a word bank.
type Generator struct {
	categories []Category
}

// NewGenerator creates a generator over categories. Every category must hold at
// least four words and there must be at least four categories.
func NewGenerator(categories []Category) (*Generator, error) {
	if len(categories) < state.GroupsPerPuzzle {
		return nil, fmt.Errorf("need at least %d categories, got %d", state.GroupsPerPuzzle, len(categories))
	}
	for _, c := range categories {
		if len(c.Words) < state.WordsPerGroup {
			return nil, fmt.Errorf("category %s has %d words, need at least %d", c.Key, len(c.Words), state.WordsPerGroup)
		}
	}
	return &Generator{categories: categories}, nil
}

// Seed derives the daily seed from a calendar date.
func Seed(date time.Time) int64 {
	return int64(date.Year()*10000 + int(date.Month())*100 + date.Day())
}

// DailyID returns the puzzle id for the given date.
func DailyID(date time.Time) string {
	return DailyIDPrefix + common.DateKey(date)
}

// Generate builds the four groups for seed.
func (g *Generator) Generate(seed int64) []state.Group {
	picked := Shuffle(g.categories, seed)[:state.GroupsPerPuzzle]

	groups := make([]state.Group, 0, state.GroupsPerPuzzle)
	for _, c := range picked {
		words := Shuffle(c.Words, seed+int64(len(c.Key)))[:state.WordsPerGroup]
		groups = append(groups, state.Group{
			Name:  c.Name,
			Color: c.Color,
			Words: words,
		})
	}
	return groups
}

// Daily builds the daily puzzle for date. The same date always yields the same puzzle.
func (g *Generator) Daily(date time.Time) *state.Puzzle {
	seed := Seed(date)
	return &state.Puzzle{
		ID:        DailyID(date),
		Groups:    g.Generate(seed),
		Seed:      seed,
		IsDaily:   true,
		Date:      common.DateKey(date),
		CreatedAt: time.Now(),
	}
}

// Practice builds a non-daily puzzle seeded from now.
func (g *Generator) Practice(now time.Time) *state.Puzzle {
	seed := now.UnixNano()
	return &state.Puzzle{
		ID:        uuid.NewString(),
		Groups:    g.Generate(seed),
		Seed:      seed,
		CreatedAt: now,
	}
}

// Board returns every word of the puzzle in a seed-stable shuffled order,
// so a client cannot read the groups off the word order.
func Board(p *state.Puzzle) []string {
	words := make([]string, 0, len(p.Groups)*state.WordsPerGroup)
	for _, group := range p.Groups {
		words = append(words, group.Words...)
	}
	return Shuffle(words, p.Seed^0x5bd1e995)
}
