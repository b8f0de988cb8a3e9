// Package metrics provides Prometheus metrics for the Momentum engine:
// counters and gauges for task flow, rewards, streaks, and day outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Tasks ──────────────────────────────────────────────────────────────────

// TasksCompleted tracks completed tasks by priority.
var TasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "momentum",
	Name:      "tasks_completed_total",
	Help:      "Total completed tasks.",
}, []string{"priority"})

// TasksPending tracks the current pending backlog.
var TasksPending = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "momentum",
	Name:      "tasks_pending",
	Help:      "Number of pending tasks.",
})

// SuggestionsServed tracks suggestion requests.
var SuggestionsServed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "momentum",
	Name:      "suggestions_served_total",
	Help:      "Total suggestion rankings served.",
})

// ─── Rewards ────────────────────────────────────────────────────────────────

// XPAwarded tracks XP by source (base, bonus, loot, achievement).
var XPAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "momentum",
	Name:      "xp_awarded_total",
	Help:      "Total XP awarded.",
}, []string{"source"})

// LootDrops tracks loot drops by rarity.
var LootDrops = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "momentum",
	Name:      "loot_drops_total",
	Help:      "Total loot drops.",
}, []string{"rarity"})

// LevelUps tracks level-up events.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "momentum",
	Name:      "level_ups_total",
	Help:      "Total level-up events.",
})

// ─── Streaks ────────────────────────────────────────────────────────────────

// StreaksSavedByShield tracks gaps absorbed by shields.
var StreaksSavedByShield = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "momentum",
	Name:      "streaks_saved_by_shield_total",
	Help:      "Streak gaps covered by consuming shields.",
})

// StreaksReset tracks streak resets.
var StreaksReset = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "momentum",
	Name:      "streaks_reset_total",
	Help:      "Streaks that reset after an uncovered gap.",
})

// ─── Days ───────────────────────────────────────────────────────────────────

// DaysRated tracks day classifications by type.
var DaysRated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "momentum",
	Name:      "days_rated_total",
	Help:      "Closed days by qualitative type.",
}, []string{"type"})
