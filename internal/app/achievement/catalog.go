// Package achievement manages the static achievement catalog and per-user
// unlock records. The catalog is configuration the engine reads but never
// mutates; checking is idempotent over a UserStats snapshot.
package achievement

import "github.com/momentum-hq/momentum/internal/domain"

// Catalog returns the full achievement table. Small enough (<20 entries)
// that a linear scan per check is fine.
func Catalog() []domain.AchievementDef {
	return []domain.AchievementDef{
		// ── Getting started ────────────────────────────────────────────
		{
			ID: "first_task", Name: "First Step", Rarity: domain.RarityCommon, RewardXP: 25,
			Description: "Complete your first task.",
			Predicate:   func(s domain.UserStats) bool { return s.TasksCompleted >= 1 },
		},
		{
			ID: "tasks_10", Name: "Getting Traction", Rarity: domain.RarityCommon, RewardXP: 50,
			Description: "Complete 10 tasks.",
			Predicate:   func(s domain.UserStats) bool { return s.TasksCompleted >= 10 },
		},
		{
			ID: "tasks_100", Name: "Century", Rarity: domain.RarityRare, RewardXP: 250,
			Description: "Complete 100 tasks.",
			Predicate:   func(s domain.UserStats) bool { return s.TasksCompleted >= 100 },
		},
		{
			ID: "tasks_1000", Name: "Unstoppable", Rarity: domain.RarityLegendary, RewardXP: 2000,
			Description: "Complete 1,000 tasks.",
			Predicate:   func(s domain.UserStats) bool { return s.TasksCompleted >= 1000 },
		},

		// ── Streaks ────────────────────────────────────────────────────
		{
			ID: "streak_3", Name: "Three in a Row", Rarity: domain.RarityCommon, RewardXP: 50,
			Description: "Keep a 3-day streak.",
			Predicate:   func(s domain.UserStats) bool { return s.CurrentStreak >= 3 },
		},
		{
			ID: "streak_7", Name: "Full Week", Rarity: domain.RarityUncommon, RewardXP: 150,
			Description: "Keep a 7-day streak.",
			Predicate:   func(s domain.UserStats) bool { return s.CurrentStreak >= 7 },
		},
		{
			ID: "streak_30", Name: "Monthly Rhythm", Rarity: domain.RarityEpic, RewardXP: 750,
			Description: "Keep a 30-day streak.",
			Predicate:   func(s domain.UserStats) bool { return s.CurrentStreak >= 30 },
		},
		{
			ID: "streak_100", Name: "Centurion", Rarity: domain.RarityLegendary, RewardXP: 2500,
			Description: "Keep a 100-day streak.",
			Predicate:   func(s domain.UserStats) bool { return s.LongestStreak >= 100 },
		},

		// ── Levels & XP ────────────────────────────────────────────────
		{
			ID: "level_3", Name: "Warming Up", Rarity: domain.RarityCommon, RewardXP: 50,
			Description: "Reach level 3.",
			Predicate:   func(s domain.UserStats) bool { return s.Level >= 3 },
		},
		{
			ID: "level_5", Name: "Halfway Up", Rarity: domain.RarityUncommon, RewardXP: 150,
			Description: "Reach level 5.",
			Predicate:   func(s domain.UserStats) bool { return s.Level >= 5 },
		},
		{
			ID: "level_10", Name: "Summit", Rarity: domain.RarityLegendary, RewardXP: 1000,
			Description: "Reach the top of the level table.",
			Predicate:   func(s domain.UserStats) bool { return s.Level >= 10 },
		},
		{
			ID: "xp_5000", Name: "Point Hoarder", Rarity: domain.RarityRare, RewardXP: 300,
			Description: "Earn 5,000 lifetime XP.",
			Predicate:   func(s domain.UserStats) bool { return s.TotalXP >= 5000 },
		},

		// ── Days ───────────────────────────────────────────────────────
		{
			ID: "perfect_day", Name: "Flawless", Rarity: domain.RarityUncommon, RewardXP: 100,
			Description: "Finish a perfect day.",
			Predicate:   func(s domain.UserStats) bool { return s.PerfectDays >= 1 },
		},
		{
			ID: "perfect_days_10", Name: "Perfectionist", Rarity: domain.RarityEpic, RewardXP: 500,
			Description: "Finish 10 perfect days.",
			Predicate:   func(s domain.UserStats) bool { return s.PerfectDays >= 10 },
		},
		{
			ID: "comeback", Name: "The Comeback", Rarity: domain.RarityRare, RewardXP: 200, Hidden: true,
			Description: "Return after a zero day and keep going.",
			Predicate:   func(s domain.UserStats) bool { return s.ZeroDays >= 1 && s.CurrentStreak >= 3 },
		},

		// ── Chains ─────────────────────────────────────────────────────
		{
			ID: "chain_first", Name: "Linked Up", Rarity: domain.RarityUncommon, RewardXP: 100,
			Description: "Complete a full task chain.",
			Predicate:   func(s domain.UserStats) bool { return s.ChainsCompleted >= 1 },
		},
		{
			ID: "chains_10", Name: "Chain Reaction", Rarity: domain.RarityEpic, RewardXP: 500,
			Description: "Complete 10 task chains.",
			Predicate:   func(s domain.UserStats) bool { return s.ChainsCompleted >= 10 },
		},
	}
}
