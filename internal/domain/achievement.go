package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// AchievementDef is a static catalog entry. The catalog is configuration
// the engine reads but never mutates.
type AchievementDef struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Rarity      Rarity               `json:"rarity"`
	RewardXP    int                  `json:"reward_xp"`
	Hidden      bool                 `json:"hidden"` // Not shown until unlocked
	Predicate   func(UserStats) bool `json:"-"`
}

// UnlockedAchievement records when an achievement was first earned.
// Immutable after creation except for the Celebrated flag.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
	Celebrated bool      `json:"celebrated"`
}
