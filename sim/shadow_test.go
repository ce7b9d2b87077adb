package sim

import "testing"

func TestShadow_TouchAndContains(t *testing.T) {
	s := newShadowCache(2)

	if s.Contains(1) || s.Touched(1) {
		t.Error("fresh shadow claims to hold blocks")
	}

	s.Touch(1)

	if !s.Contains(1) || !s.Touched(1) {
		t.Error("touched block not recorded")
	}
}

func TestShadow_EvictsLeastRecentlyUsed(t *testing.T) {
	// GIVEN a 2-block shadow holding [1, 2]
	s := newShadowCache(2)
	s.Touch(1)
	s.Touch(2)

	// WHEN a third block arrives
	s.Touch(3)

	// THEN block 1, the least recently used, is gone
	if s.Contains(1) {
		t.Error("LRU block survived eviction")
	}
	if !s.Contains(2) || !s.Contains(3) {
		t.Error("resident blocks missing")
	}
}

func TestShadow_TouchRefreshesRecency(t *testing.T) {
	// GIVEN [1, 2] where 1 is refreshed
	s := newShadowCache(2)
	s.Touch(1)
	s.Touch(2)
	s.Touch(1)

	// WHEN block 3 evicts
	s.Touch(3)

	// THEN block 2 is the victim, not the refreshed block 1
	if s.Contains(2) {
		t.Error("refreshed recency ignored: 2 should have been evicted")
	}
	if !s.Contains(1) {
		t.Error("refreshed block evicted")
	}
}

func TestShadow_TouchedSurvivesEviction(t *testing.T) {
	// The first-touch record is a per-run history, not bounded by capacity.
	s := newShadowCache(1)
	s.Touch(1)
	s.Touch(2)

	if s.Contains(1) {
		t.Error("block 1 should be evicted")
	}
	if !s.Touched(1) {
		t.Error("first-touch record lost on eviction")
	}
}
