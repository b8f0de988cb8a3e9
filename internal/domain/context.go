package domain

import "time"

// ─── User Context ───────────────────────────────────────────────────────────

// TimeOfDay buckets the wall-clock hour.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"   // 05:00–11:59
	Afternoon TimeOfDay = "afternoon" // 12:00–16:59
	Evening   TimeOfDay = "evening"   // 17:00–21:59
	Night     TimeOfDay = "night"     // 22:00–04:59
)

// TimeOfDayFor buckets a wall-clock hour into a TimeOfDay.
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}

// Mood is the user's self-reported state of mind.
type Mood string

const (
	MoodFocused   Mood = "focused"
	MoodScattered Mood = "scattered"
	MoodCreative  Mood = "creative"
	MoodTired     Mood = "tired"
	MoodAnxious   Mood = "anxious"
	MoodMotivated Mood = "motivated"
)

// Location is where the user currently is.
type Location string

const (
	LocationHome   Location = "home"
	LocationWork   Location = "work"
	LocationErrand Location = "errand"
)

// UserContext is an ephemeral snapshot of the user's situational state.
// TimeOfDay and DayOfWeek are always recomputed from the timestamp —
// never carried over from a previous snapshot.
type UserContext struct {
	Timestamp        time.Time    `json:"timestamp"`
	TimeOfDay        TimeOfDay    `json:"time_of_day"`
	DayOfWeek        time.Weekday `json:"day_of_week"`
	Location         Location     `json:"location,omitempty"`          // "" = unknown
	Energy           int          `json:"energy,omitempty"`            // 0 = unset, else 1–5
	Mood             Mood         `json:"mood,omitempty"`              // "" = unset
	AvailableMinutes int          `json:"available_minutes,omitempty"` // 0 = no budget set
	FocusMode        bool         `json:"focus_mode"`
}

// NewUserContext derives a fresh context snapshot from "now".
func NewUserContext(now time.Time) UserContext {
	return UserContext{
		Timestamp: now,
		TimeOfDay: TimeOfDayFor(now.Hour()),
		DayOfWeek: now.Weekday(),
	}
}

// Refresh recomputes the time-derived fields from "now", keeping the
// user-reported ones (location, energy, mood, budget, focus mode).
func (c UserContext) Refresh(now time.Time) UserContext {
	c.Timestamp = now
	c.TimeOfDay = TimeOfDayFor(now.Hour())
	c.DayOfWeek = now.Weekday()
	return c
}
