package domain

import "github.com/google/uuid"

// ─── Reward Types ───────────────────────────────────────────────────────────

// Bonus is one independent contribution to a task's XP reward.
// Bonuses that did not apply are absent from the list, never zero-valued.
type Bonus struct {
	Reason string `json:"reason"`
	Amount int    `json:"amount"`
}

// LevelUp reports a level transition caused by an XP award.
type LevelUp struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Reward is the full XP delta for one completed task.
// Total = Base + sum of bonus amounts, exactly.
type Reward struct {
	Base    int       `json:"base"`
	Bonuses []Bonus   `json:"bonuses,omitempty"`
	Total   int       `json:"total"`
	Loot    *LootDrop `json:"loot,omitempty"`
	LevelUp *LevelUp  `json:"level_up,omitempty"`
}

// ─── Loot Types ─────────────────────────────────────────────────────────────

// Rarity grades a loot drop.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// LootType says what a loot drop grants.
type LootType string

const (
	LootXPBonus      LootType = "xp_bonus"
	LootStreakShield LootType = "streak_shield"
)

// LootDrop is a fire-and-forget probabilistic reward produced at task
// completion. Applying the grant (extra XP or shields) is the caller's job.
type LootDrop struct {
	Type   LootType  `json:"type"`
	Value  int       `json:"value"`
	TaskID uuid.UUID `json:"task_id"`
	Rarity Rarity    `json:"rarity"`
}

// ─── Suggestion Types ───────────────────────────────────────────────────────

// Suggestion is a scored candidate task with human-readable reasons.
type Suggestion struct {
	Task    Task     `json:"task"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}
