// Package reward implements the Momentum XP calculator: a deterministic
// base plus independent additive bonuses, a variable-ratio random bonus,
// and an independent probabilistic loot roll. The variable-ratio pieces
// are the deliberate unpredictability mechanism — they must come from the
// injected random source, never from task content, and be independent
// across calls. No operation here can fail: "no bonus" is absence from
// the bonus list, not an error.
package reward

import (
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// Bonus amounts.
const (
	earlyBirdBonus    = 25
	nightOwlBonus     = 25
	deadlineBeatBonus = 15
	criticalBonus     = 10
	speedBonus        = 5
	streakBonusPerDay = 5
	streakBonusCap    = 7
)

// Variable-ratio tiers: p(+50)=5%, p(+25)=10%, p(+10)=15%, else nothing.
const (
	tierJackpot   = 0.05
	tierBig       = 0.15
	tierSmall     = 0.30
	jackpotAmount = 50
	bigAmount     = 25
	smallAmount   = 10
)

// Loot roll: base 15% drop chance plus 1% per level.
const (
	lootBaseChance     = 0.15
	lootChancePerLevel = 0.01
)

// Calculator computes XP rewards. The clock decides time-of-day bonuses
// when a task carries no completion timestamp; the random source feeds the
// variable-ratio bonus and the loot roll.
type Calculator struct {
	clock domain.Clock
	rand  domain.Rand
}

// NewCalculator creates a reward calculator.
func NewCalculator(clock domain.Clock, rand domain.Rand) *Calculator {
	return &Calculator{clock: clock, rand: rand}
}

// CalculateXP computes the full reward for one completed task. Called
// exactly once per completion, after the task's status has transitioned.
// A nil streak simply omits the streak bonus.
func (c *Calculator) CalculateXP(task domain.Task, stats domain.UserStats, streak *domain.Streak) domain.Reward {
	reward := domain.Reward{Base: task.BaseXP}

	completedAt := c.clock.Now()
	if task.CompletedAt != nil {
		completedAt = *task.CompletedAt
	}

	add := func(reason string, amount int) {
		reward.Bonuses = append(reward.Bonuses, domain.Bonus{Reason: reason, Amount: amount})
	}

	hour := completedAt.Hour()
	if hour >= 5 && hour < 9 {
		add("early bird", earlyBirdBonus)
	}
	if hour >= 22 || hour < 5 {
		add("night owl", nightOwlBonus)
	}

	// Deadline beat: done more than 24h before it was due.
	if task.DueAt != nil && task.CompletedAt != nil {
		if task.DueAt.Sub(*task.CompletedAt) > 24*time.Hour {
			add("beat the deadline", deadlineBeatBonus)
		}
	}

	if streak != nil && streak.CurrentCount > 0 {
		days := streak.CurrentCount
		if days > streakBonusCap {
			days = streakBonusCap
		}
		add("streak", days*streakBonusPerDay)
	}

	if task.Priority == domain.PriorityCritical {
		add("critical done", criticalBonus)
	}

	if task.ActualMinutes != nil && *task.ActualMinutes < task.EstimatedMinutes {
		add("faster than planned", speedBonus)
	}

	if amount := c.variableRatioBonus(); amount > 0 {
		add("surprise bonus", amount)
	}

	reward.Total = reward.Base
	for _, b := range reward.Bonuses {
		reward.Total += b.Amount
	}

	// Level-up detection against the fixed 10-level table.
	oldLevel := LevelForXP(stats.TotalXP)
	newLevel := LevelForXP(stats.TotalXP + reward.Total)
	if newLevel > oldLevel {
		reward.LevelUp = &domain.LevelUp{From: oldLevel, To: newLevel}
	}

	reward.Loot = c.rollLoot(task, LevelForXP(stats.TotalXP))
	return reward
}

// variableRatioBonus draws the random surprise tier: 5% jackpot, 10% big,
// 15% small, 70% nothing.
func (c *Calculator) variableRatioBonus() int {
	roll := c.rand.Float64()
	switch {
	case roll < tierJackpot:
		return jackpotAmount
	case roll < tierBig:
		return bigAmount
	case roll < tierSmall:
		return smallAmount
	default:
		return 0
	}
}

// rollLoot runs the independent loot roll. Higher levels drop loot more
// often. Returns nil on a miss. The drop is informational: the caller
// applies the shield grant or extra XP.
func (c *Calculator) rollLoot(task domain.Task, level int) *domain.LootDrop {
	chance := lootBaseChance + float64(level)*lootChancePerLevel
	if c.rand.Float64() >= chance {
		return nil
	}

	drop := &domain.LootDrop{TaskID: task.ID}
	switch roll := c.rand.Float64(); {
	case roll < 0.001:
		drop.Rarity = domain.RarityLegendary
	case roll < 0.01:
		drop.Rarity = domain.RarityEpic
	case roll < 0.05:
		drop.Rarity = domain.RarityRare
	case roll < 0.30:
		drop.Rarity = domain.RarityUncommon
	default:
		drop.Rarity = domain.RarityCommon
	}

	switch drop.Rarity {
	case domain.RarityLegendary:
		// Top rarities alternate between shield grants and XP windfalls.
		if c.rand.Float64() < 0.5 {
			drop.Type, drop.Value = domain.LootStreakShield, 3
		} else {
			drop.Type, drop.Value = domain.LootXPBonus, 100
		}
	case domain.RarityEpic:
		if c.rand.Float64() < 0.5 {
			drop.Type, drop.Value = domain.LootStreakShield, 2
		} else {
			drop.Type, drop.Value = domain.LootXPBonus, 75
		}
	case domain.RarityRare:
		drop.Type, drop.Value = domain.LootXPBonus, 50
	case domain.RarityUncommon:
		drop.Type, drop.Value = domain.LootXPBonus, 25
	default:
		drop.Type, drop.Value = domain.LootXPBonus, 10
	}
	return drop
}
