package services

import (
	"testing"

	"streamhub/models"
)

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Achievements {
		if seen[def.ID] {
			t.Errorf("Duplicate achievement id %q in catalog", def.ID)
		}
		seen[def.ID] = true
	}
}

func TestEvaluateUnlocksWatchTimeTier(t *testing.T) {
	// One hour watched, nothing unlocked yet
	stats := StatSnapshot{WatchTimeMs: 3600000}

	newlyUnlocked, records, points := EvaluateAchievements(stats, map[string]bool{}, 1000)

	ids := make(map[string]bool)
	for _, def := range newlyUnlocked {
		ids[def.ID] = true
	}

	if !ids["first_watch"] || !ids["hour_watcher"] {
		t.Errorf("Expected first_watch and hour_watcher to unlock, got %v", ids)
	}
	if ids["day_watcher"] {
		t.Errorf("day_watcher should not unlock at 1 hour of watch time")
	}
	if points != 60 {
		t.Errorf("Expected 60 points (10 + 50), got %d", points)
	}
	if len(records) != len(newlyUnlocked) {
		t.Errorf("Expected one record per unlock, got %d records for %d unlocks", len(records), len(newlyUnlocked))
	}
	for _, r := range records {
		if r.UnlockedAt != 1000 {
			t.Errorf("Expected unlock timestamp 1000, got %d", r.UnlockedAt)
		}
	}
}

func TestEvaluateSkipsAlreadyUnlocked(t *testing.T) {
	stats := StatSnapshot{WatchTimeMs: 3600000}
	unlocked := map[string]bool{"first_watch": true, "hour_watcher": true}

	newlyUnlocked, _, points := EvaluateAchievements(stats, unlocked, 1000)
	if len(newlyUnlocked) != 0 {
		t.Errorf("Expected no new unlocks, got %d", len(newlyUnlocked))
	}
	if points != 0 {
		t.Errorf("Expected 0 points, got %d", points)
	}
}

func TestEvaluateIsMonotonic(t *testing.T) {
	stats := StatSnapshot{WatchTimeMs: 90000000, Followers: 12, Messages: 150, Streak: 7}

	_, first, _ := EvaluateAchievements(stats, map[string]bool{}, 1)

	unlocked := make(map[string]bool)
	for _, r := range first {
		if unlocked[r.ID] {
			t.Errorf("Duplicate unlock of %q in a single evaluation", r.ID)
		}
		unlocked[r.ID] = true
	}

	// A second evaluation over the same stats must grant nothing new
	again, _, _ := EvaluateAchievements(stats, unlocked, 2)
	if len(again) != 0 {
		t.Errorf("Re-evaluation granted %d achievements, want 0", len(again))
	}
}

func TestEvaluateInclusiveThreshold(t *testing.T) {
	// Exactly at the threshold qualifies
	stats := StatSnapshot{Followers: 10}
	newlyUnlocked, _, _ := EvaluateAchievements(stats, map[string]bool{"first_follower": true}, 1)

	found := false
	for _, def := range newlyUnlocked {
		if def.ID == "popular" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected popular to unlock at exactly 10 followers")
	}
}

func TestEvaluateFollowsCatalogOrder(t *testing.T) {
	stats := StatSnapshot{WatchTimeMs: 604800000, Followers: 100, Messages: 100, Clips: 10, Streak: 30, Referrals: 5}
	newlyUnlocked, _, _ := EvaluateAchievements(stats, map[string]bool{}, 1)

	if len(newlyUnlocked) != len(Achievements) {
		t.Fatalf("Expected full catalog to unlock, got %d of %d", len(newlyUnlocked), len(Achievements))
	}
	for i, def := range newlyUnlocked {
		if def.ID != Achievements[i].ID {
			t.Errorf("Unlock order diverges from catalog at %d: got %q want %q", i, def.ID, Achievements[i].ID)
		}
	}
}

func TestProgressClampAndRounding(t *testing.T) {
	// 30 minutes toward the 1 hour requirement
	progress := AchievementProgress(StatSnapshot{WatchTimeMs: 1800000}, nil)

	byID := make(map[string]models.AchievementProgress)
	for _, p := range progress {
		byID[p.ID] = p
	}

	if byID["hour_watcher"].Progress != 50 {
		t.Errorf("Expected 50%% progress on hour_watcher, got %d", byID["hour_watcher"].Progress)
	}
	// Overshooting the requirement clamps at 100
	if byID["first_watch"].Progress != 100 {
		t.Errorf("Expected clamped 100%% progress on first_watch, got %d", byID["first_watch"].Progress)
	}
	if byID["hour_watcher"].Unlocked {
		t.Errorf("Progress query must not report locked achievements as unlocked")
	}
}

func TestProgressIsMonotonicInStat(t *testing.T) {
	prev := -1
	for _, watched := range []int64{0, 600000, 1800000, 3600000, 7200000} {
		progress := AchievementProgress(StatSnapshot{WatchTimeMs: watched}, nil)
		for _, p := range progress {
			if p.ID != "hour_watcher" {
				continue
			}
			if p.Progress < prev {
				t.Errorf("Progress decreased from %d to %d at watchTime %d", prev, p.Progress, watched)
			}
			if p.Progress > 100 {
				t.Errorf("Progress %d exceeds 100 at watchTime %d", p.Progress, watched)
			}
			prev = p.Progress
		}
	}
}

func TestProgressReportsUnlockedAt(t *testing.T) {
	unlocked := []models.UserAchievement{{ID: "first_watch", UnlockedAt: 42}}
	progress := AchievementProgress(StatSnapshot{WatchTimeMs: 5}, unlocked)

	for _, p := range progress {
		if p.ID == "first_watch" {
			if !p.Unlocked || p.UnlockedAt != 42 {
				t.Errorf("Expected first_watch unlocked at 42, got unlocked=%v at=%d", p.Unlocked, p.UnlockedAt)
			}
		}
	}
}
