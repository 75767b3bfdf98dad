// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package puzzle

import (
	"reflect"
	"testing"
	"time"
)

func TestRandom_Range(t *testing.T) {
	for seed := int64(-1000); seed < 1000; seed++ {
		v := Random(seed)
		if v < 0 || v >= 1 {
			t.Fatalf("Random(%d) = %v, outside [0,1)", seed, v)
		}
	}
	if Random(42) != Random(42) {
		t.Error("Random must be deterministic")
	}
}

func TestShuffle_Permutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	shuffled := Shuffle(items, 20251019)

	if len(shuffled) != len(items) {
		t.Fatalf("len = %d, expected %d", len(shuffled), len(items))
	}
	seen := make(map[int]bool)
	for _, v := range shuffled {
		seen[v] = true
	}
	if len(seen) != len(items) {
		t.Errorf("shuffle lost elements: %v", shuffled)
	}
	if !reflect.DeepEqual(items, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}) {
		t.Error("shuffle must not modify its input")
	}
}

func TestSeed(t *testing.T) {
	date := time.Date(2025, time.March, 7, 23, 59, 0, 0, time.UTC)
	if got := Seed(date); got != 20250307 {
		t.Errorf("Seed = %d, expected 20250307", got)
	}
}

func TestDaily_Deterministic(t *testing.T) {
	g, err := NewGenerator(DefaultCategories)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	morning := time.Date(2025, time.October, 19, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.October, 19, 22, 30, 0, 0, time.UTC)

	first := g.Daily(morning)
	second := g.Daily(evening)

	if !reflect.DeepEqual(first.Groups, second.Groups) {
		t.Errorf("daily puzzle differs within one day:\n%v\n%v", first.Groups, second.Groups)
	}
	if first.ID != "daily-2025-10-19" || first.Date != "2025-10-19" || !first.IsDaily {
		t.Errorf("unexpected daily identity: id=%s date=%s daily=%v", first.ID, first.Date, first.IsDaily)
	}
	if !reflect.DeepEqual(Board(first), Board(second)) {
		t.Error("board order should be stable for the same puzzle")
	}
}

func TestDaily_Shape(t *testing.T) {
	g, _ := NewGenerator(DefaultCategories)

	start := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 60; d++ {
		p := g.Daily(start.AddDate(0, 0, d))
		if len(p.Groups) != 4 {
			t.Fatalf("%s: %d groups", p.Date, len(p.Groups))
		}

		names := make(map[string]bool)
		for _, group := range p.Groups {
			if len(group.Words) != 4 {
				t.Errorf("%s: group %s has %d words", p.Date, group.Name, len(group.Words))
			}
			if group.Color == "" {
				t.Errorf("%s: group %s has no color", p.Date, group.Name)
			}
			names[group.Name] = true
		}
		if len(names) != 4 {
			t.Errorf("%s: categories repeat: %v", p.Date, names)
		}
		if len(Board(p)) != 16 {
			t.Errorf("%s: board has %d words", p.Date, len(Board(p)))
		}
	}
}

func TestDaily_VariesAcrossDays(t *testing.T) {
	g, _ := NewGenerator(DefaultCategories)
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	distinct := make(map[string]bool)
	for d := 0; d < 14; d++ {
		p := g.Daily(start.AddDate(0, 0, d))
		key := ""
		for _, group := range p.Groups {
			key += group.Name + "|" + group.Words[0] + ";"
		}
		distinct[key] = true
	}
	if len(distinct) < 2 {
		t.Error("expected different puzzles across two weeks")
	}
}

func TestPractice(t *testing.T) {
	g, _ := NewGenerator(DefaultCategories)
	p := g.Practice(time.Now())

	if p.IsDaily {
		t.Error("practice puzzle must not be daily")
	}
	if p.ID == "" {
		t.Error("practice puzzle needs an id")
	}
	if len(p.Groups) != 4 {
		t.Errorf("practice puzzle has %d groups", len(p.Groups))
	}
}

func TestNewGenerator_Validation(t *testing.T) {
	if _, err := NewGenerator(DefaultCategories[:3]); err == nil {
		t.Error("expected error for too few categories")
	}

	short := append([]Category{}, DefaultCategories...)
	short[0] = Category{Key: "tiny", Words: []string{"a", "b"}}
	if _, err := NewGenerator(short); err == nil {
		t.Error("expected error for category with too few words")
	}
}
