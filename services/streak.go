package services

import (
	"fmt"

	"streamhub/models"
)

// DayMs is one day in epoch milliseconds, the claim cooldown
const DayMs = 24 * 60 * 60 * 1000

// Streak lengths that double the tiered reward
var streakMilestones = map[int]bool{7: true, 14: true, 30: true, 60: true, 100: true, 365: true}

// AlreadyClaimedError reports when the next claim becomes available
type AlreadyClaimedError struct {
	NextClaimAt int64
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("already claimed today, next claim at %d", e.NextClaimAt)
}

// ClaimResult is the outcome of a successful daily claim
type ClaimResult struct {
	Reward      int64
	Streak      models.LoginStreak
	IsMilestone bool
	NextReward  int64
}

// TierReward returns the reward tier for a streak length. Tiers do not
// short-circuit; the highest applicable one wins.
func TierReward(streak int) int64 {
	reward := int64(10)
	if streak >= 7 {
		reward = 50
	}
	if streak >= 14 {
		reward = 100
	}
	if streak >= 30 {
		reward = 250
	}
	if streak >= 100 {
		reward = 500
	}
	return reward
}

// ClaimDaily advances a login streak at nowMs. Claims inside the 24h cooldown fail
// with AlreadyClaimedError and no state change. The streak continues when the gap
// since the last claim is strictly under 48h; a gap of exactly 48h resets to 1 (the
// triggering login itself counts as day one). Milestone lengths double the tier.
func ClaimDaily(nowMs int64, streak models.LoginStreak) (ClaimResult, error) {
	if nowMs-streak.LastLogin < DayMs {
		return ClaimResult{}, &AlreadyClaimedError{NextClaimAt: streak.LastLogin + DayMs}
	}

	newCurrent := 1
	if nowMs-streak.LastLogin < 2*DayMs {
		newCurrent = streak.Current + 1
	}

	newLongest := streak.Longest
	if newCurrent > newLongest {
		newLongest = newCurrent
	}

	reward := TierReward(newCurrent)
	isMilestone := streakMilestones[newCurrent]
	if isMilestone {
		reward *= 2
	}

	return ClaimResult{
		Reward: reward,
		Streak: models.LoginStreak{
			Current:   newCurrent,
			Longest:   newLongest,
			LastLogin: nowMs,
		},
		IsMilestone: isMilestone,
		NextReward:  TierReward(newCurrent),
	}, nil
}

// CanClaim reports whether the cooldown has elapsed and when the next claim opens
func CanClaim(nowMs int64, streak models.LoginStreak) (bool, int64) {
	return nowMs-streak.LastLogin >= DayMs, streak.LastLogin + DayMs
}
