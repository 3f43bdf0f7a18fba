package models

// RequirementType is the closed set of stats an achievement can gate on
type RequirementType string

const (
	RequirementWatchTime RequirementType = "watchTime"
	RequirementFollowers RequirementType = "followers"
	RequirementMessages  RequirementType = "messages"
	RequirementClips     RequirementType = "clips"
	RequirementStreak    RequirementType = "streak"
	RequirementReferrals RequirementType = "referrals"
)

// AchievementRequirement is the qualification threshold for one achievement
type AchievementRequirement struct {
	Type  RequirementType `bson:"type" json:"type"`
	Value int64           `bson:"value" json:"value"`
}

// AchievementReward is what an unlock grants
type AchievementReward struct {
	Points int64 `bson:"points" json:"points"`
}

// AchievementDefinition is one entry of the static catalog
type AchievementDefinition struct {
	ID          string                 `bson:"id" json:"id"`
	Name        string                 `bson:"name" json:"name"`
	Description string                 `bson:"description" json:"description"`
	Icon        string                 `bson:"icon" json:"icon"`
	Category    string                 `bson:"category" json:"category"` // "watching", "social", "engagement", "special"
	Rarity      string                 `bson:"rarity" json:"rarity"`     // "common", "rare", "epic", "legendary"
	Requirement AchievementRequirement `bson:"requirement" json:"requirement"`
	Reward      AchievementReward      `bson:"reward" json:"reward"`
}

// UserAchievement records one unlocked achievement on the user document.
// UnlockedAt is epoch milliseconds.
type UserAchievement struct {
	ID         string `bson:"id" json:"id"`
	UnlockedAt int64  `bson:"unlockedAt" json:"unlockedAt"`
}

// AchievementProgress is the read-only progress view for one catalog entry
type AchievementProgress struct {
	AchievementDefinition
	Unlocked   bool  `json:"unlocked"`
	UnlockedAt int64 `json:"unlockedAt,omitempty"`
	Progress   int   `json:"progress"`
}

// GamificationEvent is broadcast to connected clients when state changes
type GamificationEvent struct {
	Type          string `json:"type"` // "achievement_unlocked", "streak_claimed", "notification"
	UserID        string `json:"userId"`
	AchievementID string `json:"achievementId,omitempty"`
	Points        int64  `json:"points,omitempty"`
	Streak        int    `json:"streak,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}
