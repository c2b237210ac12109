package services

// HashKey turns a string key into a 32-bit seed using the classic 31
// multiplier with unsigned wraparound at every step. The same key always
// yields the same seed; the empty string yields 0, which ShuffleWithSeed
// guards against.
func HashKey(key string) uint32 {
	var hash uint32
	for i := 0; i < len(key); i++ {
		hash = hash*31 + uint32(key[i])
	}
	return hash
}

// ShuffleWithSeed returns a new slice holding a reproducible permutation of
// items. It never mutates its input and never touches a platform random
// source: the swap sequence comes entirely from a linear congruential step
// on the seed, so the same (items, seed) pair produces the same order on
// every platform, every time.
func ShuffleWithSeed[T any](items []T, seed uint32) []T {
	result := make([]T, len(items))
	copy(result, items)

	// A zero seed would feed the LCG a degenerate start; substitute 1 to
	// match the historical output stream.
	if seed == 0 {
		seed = 1
	}

	for i := len(result) - 1; i > 0; i-- {
		seed = seed*1664525 + 1013904223
		j := int(seed % uint32(i+1))
		result[i], result[j] = result[j], result[i]
	}

	return result
}
