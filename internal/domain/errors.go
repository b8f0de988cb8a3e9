package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency. Normal domain
// variation (no bonus, no loot, nil streak) is represented by absence, not
// by error; these sentinels mark caller programming errors and lookups.

var (
	// ErrInvalidState marks a lifecycle violation, e.g. completing a task
	// that is not pending or in progress.
	ErrInvalidState = errors.New("invalid state transition")

	// ErrInvalidArgument marks out-of-range input, e.g. an energy level
	// outside 1–5 or a streak whose last activity is in the future.
	ErrInvalidArgument = errors.New("invalid argument")

	// Lookup errors
	ErrTaskNotFound        = errors.New("task not found")
	ErrStreakNotFound      = errors.New("streak not found")
	ErrAchievementNotFound = errors.New("achievement not found")

	// ErrDayAlreadyRated guards the append-only day log: one rating per
	// calendar day, never rewritten.
	ErrDayAlreadyRated = errors.New("day already rated")
)
