// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "word_groups"

var (
	GuessesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guesses_total",
			Help:      "Guesses submitted, by result.",
		},
		[]string{"result"},
	)

	PuzzlesCompletedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "puzzles_completed_total",
			Help:      "Puzzles completed, by kind (daily or practice).",
		},
		[]string{"kind"},
	)

	AchievementsUnlockedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievements_unlocked_total",
			Help:      "Achievements unlocked by the achievement pipeline.",
		},
		[]string{"achievement_id"},
	)

	RewardsAcquiredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewards_acquired_total",
			Help:      "Shop items acquired, by reward and source (purchase or claim).",
		},
		[]string{"reward_id", "source"},
	)

	MintFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mint_failures_total",
			Help:      "On-chain mints that failed and were skipped.",
		},
	)
)

// Collectors returns every domain metric for registration on the metrics server.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		GuessesTotal,
		PuzzlesCompletedTotal,
		AchievementsUnlockedTotal,
		RewardsAcquiredTotal,
		MintFailuresTotal,
	}
}

func ObserveGuess(correct bool) {
	result := "wrong"
	if correct {
		result = "correct"
	}
	GuessesTotal.WithLabelValues(result).Inc()
}

func ObserveCompletion(daily bool) {
	kind := "practice"
	if daily {
		kind = "daily"
	}
	PuzzlesCompletedTotal.WithLabelValues(kind).Inc()
}
