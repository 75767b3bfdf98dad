// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import "math"

// SummarizeProgress aggregates a player's progress records.
func SummarizeProgress(records []*Progress) PlayerStats {
	var stats PlayerStats
	for _, p := range records {
		stats.TotalGames++
		stats.TotalPoints += p.Points
		if p.Points > stats.BestScore {
			stats.BestScore = p.Points
		}
		if p.IsCompleted {
			stats.CompletedGames++
			if p.IsDaily {
				stats.DailyCompleted++
			}
		}
	}
	if stats.TotalGames > 0 {
		rate := float64(stats.CompletedGames) / float64(stats.TotalGames) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}
	return stats
}
