// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package puzzle

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
	lcgRounds     = 3
)

// Random maps seed to a value in [0, 1). It is a pure function of seed.
func Random(seed int64) float64 {
	x := uint64(seed) % lcgModulus
	for i := 0; i < lcgRounds; i++ {
		x = (lcgMultiplier*x + lcgIncrement) % lcgModulus
	}
	return float64(x) / lcgModulus
}

// Shuffle returns a shuffled copy of items. Fisher-Yates from the end,
// drawing position i from Random(seed+i).
func Shuffle[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j := int(Random(seed+int64(i)) * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
