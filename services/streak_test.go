package services

import (
	"errors"
	"testing"

	"streamhub/models"
)

func TestClaimInsideCooldownFails(t *testing.T) {
	last := int64(1_000_000_000_000)
	streak := models.LoginStreak{Current: 5, Longest: 5, LastLogin: last}

	// 10 hours later
	_, err := ClaimDaily(last+10*60*60*1000, streak)
	if err == nil {
		t.Fatalf("Expected claim inside cooldown to fail")
	}

	var claimed *AlreadyClaimedError
	if !errors.As(err, &claimed) {
		t.Fatalf("Expected AlreadyClaimedError, got %v", err)
	}
	if claimed.NextClaimAt != last+DayMs {
		t.Errorf("Expected next claim at %d, got %d", last+DayMs, claimed.NextClaimAt)
	}
}

func TestClaimContinuesStreakUnder48h(t *testing.T) {
	last := int64(1_000_000_000_000)
	now := last + 30*60*60*1000 // 30 hours later

	result, err := ClaimDaily(now, models.LoginStreak{Current: 5, Longest: 9, LastLogin: last})
	if err != nil {
		t.Fatalf("ClaimDaily failed: %v", err)
	}
	if result.Streak.Current != 6 {
		t.Errorf("Expected streak 6, got %d", result.Streak.Current)
	}
	if result.Reward != 10 {
		t.Errorf("Expected reward 10 for streak 6, got %d", result.Reward)
	}
	if result.IsMilestone {
		t.Errorf("Streak 6 is not a milestone")
	}
	if result.Streak.Longest != 9 {
		t.Errorf("Longest should stay 9, got %d", result.Streak.Longest)
	}
	if result.Streak.LastLogin != now {
		t.Errorf("LastLogin should advance to claim time")
	}
}

func TestClaimMilestoneDoublesReward(t *testing.T) {
	last := int64(1_000_000_000_000)

	result, err := ClaimDaily(last+DayMs, models.LoginStreak{Current: 6, Longest: 6, LastLogin: last})
	if err != nil {
		t.Fatalf("ClaimDaily failed: %v", err)
	}
	if result.Streak.Current != 7 {
		t.Errorf("Expected streak 7, got %d", result.Streak.Current)
	}
	if !result.IsMilestone {
		t.Errorf("Streak 7 is a milestone")
	}
	if result.Reward != 100 {
		t.Errorf("Expected doubled reward 100 at streak 7, got %d", result.Reward)
	}
	if result.Streak.Longest != 7 {
		t.Errorf("Longest should follow current to 7, got %d", result.Streak.Longest)
	}
}

func TestClaimResetsAtExactly48h(t *testing.T) {
	last := int64(1_000_000_000_000)

	result, err := ClaimDaily(last+2*DayMs, models.LoginStreak{Current: 20, Longest: 20, LastLogin: last})
	if err != nil {
		t.Fatalf("ClaimDaily failed: %v", err)
	}
	if result.Streak.Current != 1 {
		t.Errorf("A 48h gap must reset the streak to 1, got %d", result.Streak.Current)
	}
	if result.Streak.Longest != 20 {
		t.Errorf("Reset must preserve longest, got %d", result.Streak.Longest)
	}
	if result.Reward != 10 {
		t.Errorf("Expected base reward 10 after reset, got %d", result.Reward)
	}
}

func TestClaimContinuesJustUnder48h(t *testing.T) {
	last := int64(1_000_000_000_000)

	result, err := ClaimDaily(last+2*DayMs-1, models.LoginStreak{Current: 20, Longest: 20, LastLogin: last})
	if err != nil {
		t.Fatalf("ClaimDaily failed: %v", err)
	}
	if result.Streak.Current != 21 {
		t.Errorf("A gap just under 48h continues the streak, got %d", result.Streak.Current)
	}
}

func TestFirstClaimStartsAtOne(t *testing.T) {
	result, err := ClaimDaily(1_000_000_000_000, models.LoginStreak{})
	if err != nil {
		t.Fatalf("ClaimDaily failed: %v", err)
	}
	if result.Streak.Current != 1 || result.Streak.Longest != 1 {
		t.Errorf("First claim should start streak at 1/1, got %d/%d", result.Streak.Current, result.Streak.Longest)
	}
}

func TestTierRewards(t *testing.T) {
	cases := []struct {
		streak int
		want   int64
	}{
		{1, 10}, {6, 10}, {7, 50}, {13, 50}, {14, 100},
		{29, 100}, {30, 250}, {99, 250}, {100, 500}, {365, 500},
	}
	for _, c := range cases {
		if got := TierReward(c.streak); got != c.want {
			t.Errorf("TierReward(%d) = %d, want %d", c.streak, got, c.want)
		}
	}
}

func TestCanClaim(t *testing.T) {
	last := int64(1_000_000_000_000)
	streak := models.LoginStreak{Current: 3, LastLogin: last}

	ok, next := CanClaim(last+DayMs-1, streak)
	if ok {
		t.Errorf("Claim must stay closed one millisecond before cooldown end")
	}
	if next != last+DayMs {
		t.Errorf("Expected next claim at %d, got %d", last+DayMs, next)
	}

	ok, _ = CanClaim(last+DayMs, streak)
	if !ok {
		t.Errorf("Claim must open exactly at cooldown end")
	}
}
