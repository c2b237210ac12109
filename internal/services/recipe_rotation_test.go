package services

import (
	"reflect"
	"testing"
	"time"
)

func TestDailyRotationKey(t *testing.T) {
	t.Parallel()

	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 01:30 UTC on the 29th is still the evening of the 28th in Sao Paulo.
	instant := time.Date(2026, 8, 29, 1, 30, 0, 0, time.UTC)

	if got := DailyRotationKey(instant, time.UTC); got != "2026-08-29" {
		t.Fatalf("expected UTC key 2026-08-29, got %s", got)
	}
	if got := DailyRotationKey(instant, saoPaulo); got != "2026-08-28" {
		t.Fatalf("expected Sao Paulo key 2026-08-28, got %s", got)
	}
	if got := DailyRotationKey(instant, nil); got != "2026-08-29" {
		t.Fatalf("expected nil location to keep the instant's day, got %s", got)
	}
}

func TestSelectDaily_StableWithinDay(t *testing.T) {
	t.Parallel()

	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	first := SelectDaily(pool, "12345678901", "2026-08-29", 5)
	second := SelectDaily(pool, "12345678901", "2026-08-29", 5)

	if len(first) != 5 {
		t.Fatalf("expected 5 selections, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same keys produced different selections: %v vs %v", first, second)
	}
}

func TestSelectDaily_SubsetWithoutDuplicates(t *testing.T) {
	t.Parallel()

	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	selected := SelectDaily(pool, "98765432100", "2026-01-15", 5)

	poolSet := map[string]bool{}
	for _, item := range pool {
		poolSet[item] = true
	}

	seen := map[string]bool{}
	for _, item := range selected {
		if !poolSet[item] {
			t.Fatalf("selection contains %q, which is not in the pool", item)
		}
		if seen[item] {
			t.Fatalf("selection contains duplicate %q", item)
		}
		seen[item] = true
	}
}

func TestSelectDaily_SmallPoolComesBackWhole(t *testing.T) {
	t.Parallel()

	pool := []string{"x", "y", "z"}
	selected := SelectDaily(pool, "12345678901", "2026-08-29", 5)

	if len(selected) != 3 {
		t.Fatalf("expected the whole pool of 3, got %d items", len(selected))
	}

	seen := map[string]bool{}
	for _, item := range selected {
		if seen[item] {
			t.Fatalf("selection contains duplicate %q", item)
		}
		seen[item] = true
	}
}

func TestSelectDaily_EmptyPoolAndZeroCount(t *testing.T) {
	t.Parallel()

	if got := SelectDaily([]string{}, "12345678901", "2026-08-29", 5); len(got) != 0 {
		t.Fatalf("expected empty selection for empty pool, got %v", got)
	}
	if got := SelectDaily([]string{"a", "b"}, "12345678901", "2026-08-29", 0); len(got) != 0 {
		t.Fatalf("expected empty selection for count 0, got %v", got)
	}
}
