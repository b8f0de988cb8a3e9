package domain

import "time"

// ─── Streak Types ───────────────────────────────────────────────────────────

// StreakKind names the continuity metric a streak tracks.
type StreakKind string

const (
	StreakDailyActivity   StreakKind = "daily_activity"
	StreakChainCompletion StreakKind = "chain_completion"
	StreakFocusTime       StreakKind = "focus_time"
)

// VisibleStreakCap bounds the streak count shown to the user. A broken
// 100-day streak should never read as "lost 100"; the true count is kept
// internally for longest-streak bookkeeping and achievement thresholds.
const VisibleStreakCap = 7

// Streak tracks consecutive qualifying days for one continuity metric.
// Shields are consumable credits that each forgive one missed day.
type Streak struct {
	Kind             StreakKind `json:"kind"`
	CurrentCount     int        `json:"current_count"`
	LongestCount     int        `json:"longest_count"`
	LastActivity     time.Time  `json:"last_activity"` // Calendar-day granularity
	ShieldsAvailable int        `json:"shields_available"`
	ShieldsUsed      int        `json:"shields_used"`
	StartedAt        time.Time  `json:"started_at"`
}

// Visible returns the capped count exposed to the UI layer.
func (s Streak) Visible() int {
	if s.CurrentCount > VisibleStreakCap {
		return VisibleStreakCap
	}
	return s.CurrentCount
}
