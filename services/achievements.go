package services

import (
	"math"

	"streamhub/models"
)

// Achievement catalog. Declaration order is the evaluation order; ids are unique.
// Do not mutate at runtime.
var Achievements = []models.AchievementDefinition{
	{
		ID:          "first_watch",
		Name:        "First Steps",
		Description: "Watch your first stream",
		Icon:        "👀",
		Category:    "watching",
		Rarity:      "common",
		Requirement: models.AchievementRequirement{Type: models.RequirementWatchTime, Value: 1},
		Reward:      models.AchievementReward{Points: 10},
	},
	{
		ID:          "hour_watcher",
		Name:        "Dedicated Viewer",
		Description: "Watch streams for 1 hour total",
		Icon:        "⏰",
		Category:    "watching",
		Rarity:      "common",
		Requirement: models.AchievementRequirement{Type: models.RequirementWatchTime, Value: 3600000},
		Reward:      models.AchievementReward{Points: 50},
	},
	{
		ID:          "day_watcher",
		Name:        "Binge Watcher",
		Description: "Watch streams for 24 hours total",
		Icon:        "📺",
		Category:    "watching",
		Rarity:      "rare",
		Requirement: models.AchievementRequirement{Type: models.RequirementWatchTime, Value: 86400000},
		Reward:      models.AchievementReward{Points: 500},
	},
	{
		ID:          "week_watcher",
		Name:        "Stream Addict",
		Description: "Watch streams for 168 hours total",
		Icon:        "🎬",
		Category:    "watching",
		Rarity:      "epic",
		Requirement: models.AchievementRequirement{Type: models.RequirementWatchTime, Value: 604800000},
		Reward:      models.AchievementReward{Points: 2000},
	},
	{
		ID:          "first_follower",
		Name:        "Social Butterfly",
		Description: "Follow your first user",
		Icon:        "🦋",
		Category:    "social",
		Rarity:      "common",
		Requirement: models.AchievementRequirement{Type: models.RequirementFollowers, Value: 1},
		Reward:      models.AchievementReward{Points: 25},
	},
	{
		ID:          "popular",
		Name:        "Popular",
		Description: "Get 10 followers",
		Icon:        "⭐",
		Category:    "social",
		Rarity:      "rare",
		Requirement: models.AchievementRequirement{Type: models.RequirementFollowers, Value: 10},
		Reward:      models.AchievementReward{Points: 200},
	},
	{
		ID:          "influencer",
		Name:        "Influencer",
		Description: "Get 100 followers",
		Icon:        "👑",
		Category:    "social",
		Rarity:      "epic",
		Requirement: models.AchievementRequirement{Type: models.RequirementFollowers, Value: 100},
		Reward:      models.AchievementReward{Points: 1000},
	},
	{
		ID:          "chatterbox",
		Name:        "Chatterbox",
		Description: "Send 100 messages",
		Icon:        "💬",
		Category:    "engagement",
		Rarity:      "common",
		Requirement: models.AchievementRequirement{Type: models.RequirementMessages, Value: 100},
		Reward:      models.AchievementReward{Points: 100},
	},
	{
		ID:          "clip_creator",
		Name:        "Clip Master",
		Description: "Create 10 clips",
		Icon:        "✂️",
		Category:    "engagement",
		Rarity:      "rare",
		Requirement: models.AchievementRequirement{Type: models.RequirementClips, Value: 10},
		Reward:      models.AchievementReward{Points: 300},
	},
	{
		ID:          "streak_7",
		Name:        "Week Warrior",
		Description: "Login for 7 days in a row",
		Icon:        "🔥",
		Category:    "engagement",
		Rarity:      "rare",
		Requirement: models.AchievementRequirement{Type: models.RequirementStreak, Value: 7},
		Reward:      models.AchievementReward{Points: 250},
	},
	{
		ID:          "streak_30",
		Name:        "Monthly Master",
		Description: "Login for 30 days in a row",
		Icon:        "🏆",
		Category:    "engagement",
		Rarity:      "epic",
		Requirement: models.AchievementRequirement{Type: models.RequirementStreak, Value: 30},
		Reward:      models.AchievementReward{Points: 1500},
	},
	{
		ID:          "referrer",
		Name:        "Recruiter",
		Description: "Refer 5 friends",
		Icon:        "🎁",
		Category:    "social",
		Rarity:      "epic",
		Requirement: models.AchievementRequirement{Type: models.RequirementReferrals, Value: 5},
		Reward:      models.AchievementReward{Points: 1000},
	},
}

// StatSnapshot is a user's cumulative stats at evaluation time
type StatSnapshot struct {
	WatchTimeMs int64
	Followers   int64
	Messages    int64
	Clips       int64
	Streak      int64
	Referrals   int64
}

func (s StatSnapshot) valueFor(t models.RequirementType) int64 {
	switch t {
	case models.RequirementWatchTime:
		return s.WatchTimeMs
	case models.RequirementFollowers:
		return s.Followers
	case models.RequirementMessages:
		return s.Messages
	case models.RequirementClips:
		return s.Clips
	case models.RequirementStreak:
		return s.Streak
	case models.RequirementReferrals:
		return s.Referrals
	}
	return 0
}

// EvaluateAchievements walks the catalog in order and returns every definition that
// newly qualifies (inclusive threshold), its unlock records stamped with nowMs, and
// the total points awarded. Already-unlocked ids are skipped; there is no early exit.
func EvaluateAchievements(stats StatSnapshot, unlocked map[string]bool, nowMs int64) ([]models.AchievementDefinition, []models.UserAchievement, int64) {
	var newlyUnlocked []models.AchievementDefinition
	var records []models.UserAchievement
	var totalPoints int64

	for _, def := range Achievements {
		if unlocked[def.ID] {
			continue
		}
		if stats.valueFor(def.Requirement.Type) >= def.Requirement.Value {
			newlyUnlocked = append(newlyUnlocked, def)
			records = append(records, models.UserAchievement{ID: def.ID, UnlockedAt: nowMs})
			totalPoints += def.Reward.Points
		}
	}

	return newlyUnlocked, records, totalPoints
}

// AchievementProgress reports per-catalog-entry progress regardless of unlocked
// state. Progress is clamped to 100. Read-only.
func AchievementProgress(stats StatSnapshot, unlocked []models.UserAchievement) []models.AchievementProgress {
	unlockedAt := make(map[string]int64, len(unlocked))
	for _, a := range unlocked {
		unlockedAt[a.ID] = a.UnlockedAt
	}

	result := make([]models.AchievementProgress, 0, len(Achievements))
	for _, def := range Achievements {
		source := stats.valueFor(def.Requirement.Type)
		progress := math.Min(100, float64(source)/float64(def.Requirement.Value)*100)

		at, isUnlocked := unlockedAt[def.ID]
		entry := models.AchievementProgress{
			AchievementDefinition: def,
			Unlocked:              isUnlocked,
			Progress:              int(math.Round(progress)),
		}
		if isUnlocked {
			entry.UnlockedAt = at
		}
		result = append(result, entry)
	}
	return result
}

// AchievementByID looks up a catalog entry
func AchievementByID(id string) (models.AchievementDefinition, bool) {
	for _, def := range Achievements {
		if def.ID == id {
			return def, true
		}
	}
	return models.AchievementDefinition{}, false
}
