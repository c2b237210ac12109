package services

import "time"

// DailyRotationKey formats the calendar day used to seed the recipe
// rotation. The rotation changes at the next calendar day in the given
// location and is stable within the day.
func DailyRotationKey(now time.Time, location *time.Location) string {
	if location != nil {
		now = now.In(location)
	}
	return now.Format("2006-01-02")
}

// SelectDaily picks a stable per-day subset of candidates for one identity.
// The identity key and date key are combined into a seed, the pool is
// shuffled deterministically, and the first count elements are returned.
// A pool smaller than count comes back whole; an empty pool comes back
// empty. Recomputing with the same keys reproduces the same list, so
// nothing about the selection needs to be persisted.
func SelectDaily[T any](candidates []T, identityKey string, dateKey string, count int) []T {
	if len(candidates) == 0 || count <= 0 {
		return []T{}
	}

	seed := HashKey(identityKey + "-" + dateKey)
	shuffled := ShuffleWithSeed(candidates, seed)

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
