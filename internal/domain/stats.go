package domain

import "time"

// ─── User Stats ─────────────────────────────────────────────────────────────

// UserStats is the cumulative counter snapshot fed to the reward calculator
// and achievement predicates. XP and level are mutated only by the reward
// path; streak fields only by the streak ledger.
type UserStats struct {
	TotalXP            int          `json:"total_xp"`
	Level              int          `json:"level"`
	CurrentStreak      int          `json:"current_streak"`
	LongestStreak      int          `json:"longest_streak"`
	TasksCompleted     int          `json:"tasks_completed"`
	ChainsCompleted    int          `json:"chains_completed"`
	PerfectDays        int          `json:"perfect_days"`
	GoodEnoughDays     int          `json:"good_enough_days"`
	ZeroDays           int          `json:"zero_days"`
	AverageEnergy      float64      `json:"average_energy"`
	MostProductiveHour int          `json:"most_productive_hour"`
	MostProductiveDay  time.Weekday `json:"most_productive_day"`
}

// ─── Day Ratings ────────────────────────────────────────────────────────────

// DayType is the qualitative bucket a finished day falls into.
type DayType string

const (
	DayPerfect       DayType = "perfect"
	DayGood          DayType = "good"
	DayOkay          DayType = "okay"
	DayMinimumViable DayType = "minimum_viable"
	DayZero          DayType = "zero"
)

// DayRating is an immutable historical record, created once per day at
// evaluation time. The day log is append-only; it feeds pattern detection
// and streak recomputation.
type DayRating struct {
	Date           time.Time `json:"date"`
	Type           DayType   `json:"type"`
	Energy         int       `json:"energy,omitempty"`
	TasksCompleted int       `json:"tasks_completed"`
	XPEarned       int       `json:"xp_earned"`
	Note           string    `json:"note,omitempty"`
}

// DayEvaluation is the outcome of classifying a finished day.
type DayEvaluation struct {
	Type           DayType `json:"type"`
	TasksCompleted int     `json:"tasks_completed"`
	TasksPlanned   int     `json:"tasks_planned"`
	CompletionRate float64 `json:"completion_rate"`
	MVDAchieved    bool    `json:"mvd_achieved"`
	Message        string  `json:"message"`
	XPEarned       int     `json:"xp_earned"`
}

// MinimumViableDay lists the task IDs whose completion (or the completion
// of a task they trigger) keeps a day from counting as zero.
type MinimumViableDay struct {
	TaskIDs []string `json:"task_ids"`
}

// Contains reports whether the given task ID is on the MVD list.
func (m MinimumViableDay) Contains(id string) bool {
	for _, t := range m.TaskIDs {
		if t == id {
			return true
		}
	}
	return false
}

// ─── Recovery ───────────────────────────────────────────────────────────────

// RecoveryMessage is the non-punitive copy shown after a gap in usage.
type RecoveryMessage struct {
	Message         string `json:"message"`
	SubMessage      string `json:"sub_message"`
	SuggestedAction string `json:"suggested_action"`
}

// StreakAnalysis is a streak recomputed from the day log, independent of
// the ledger's own state.
type StreakAnalysis struct {
	CurrentStreak         int    `json:"current_streak"`
	DaysSinceLastActivity int    `json:"days_since_last_activity"`
	IsStreakBroken        bool   `json:"is_streak_broken"`
	CanRecover            bool   `json:"can_recover"`
	RecoveryMessage       string `json:"recovery_message"`
}
