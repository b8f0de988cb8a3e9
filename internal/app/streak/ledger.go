// Package streak implements the Momentum streak ledger: a day-granular
// state machine with a finite pool of shields that absorb missed days
// without resetting the count. All functions are pure — the caller owns
// persistence and serializes day-boundary evaluation.
package streak

import (
	"fmt"
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// Advance runs the once-per-day-boundary transition for one streak.
// Gap rules, comparing calendar dates rather than timestamps:
//
//	0 days  — already recorded today; refresh the date if today qualifies.
//	1 day   — consecutive; increment if today qualifies.
//	>1 day  — a gap. If shields cover every missed day, consume them and
//	          the streak survives. Otherwise reset: count 1 if today
//	          qualifies, else 0, and the run restarts.
//
// A day under the minimum leaves the streak untouched ("at risk") — it
// neither advances nor breaks until a later evaluation settles it.
func Advance(s domain.Streak, tasksCompletedToday, minimumRequired int, now time.Time) (domain.Streak, error) {
	if minimumRequired < 1 {
		minimumRequired = 1
	}
	if !s.LastActivity.IsZero() && domain.DaysBetween(s.LastActivity, now) < 0 {
		return s, fmt.Errorf("last activity %s is after today: %w",
			domain.DateKey(s.LastActivity), domain.ErrInvalidArgument)
	}

	qualifies := tasksCompletedToday >= minimumRequired

	// First qualifying day ever.
	if s.LastActivity.IsZero() {
		if !qualifies {
			return s, nil
		}
		s.CurrentCount = 1
		s.LastActivity = now
		s.StartedAt = now
		if s.LongestCount < 1 {
			s.LongestCount = 1
		}
		return s, nil
	}

	switch days := domain.DaysBetween(s.LastActivity, now); {
	case days == 0:
		if qualifies {
			s.LastActivity = now
		}

	case days == 1:
		if qualifies {
			s.CurrentCount++
			s.LastActivity = now
			if s.CurrentCount > s.LongestCount {
				s.LongestCount = s.CurrentCount
			}
		}

	default:
		missed := days - 1
		if s.ShieldsAvailable >= missed {
			// Shields absorb the gap: the run survives.
			s.ShieldsAvailable -= missed
			s.ShieldsUsed += missed
			s.CurrentCount++
			s.LastActivity = now
			if s.CurrentCount > s.LongestCount {
				s.LongestCount = s.CurrentCount
			}
		} else {
			// The run breaks. Restart from today if it qualifies.
			if qualifies {
				s.CurrentCount = 1
				s.LastActivity = now
				if s.LongestCount < 1 {
					s.LongestCount = 1
				}
			} else {
				s.CurrentCount = 0
			}
			s.StartedAt = now
		}
	}
	return s, nil
}

// AddShield grants n shields. Grants are additive only; shields persist
// until consumed by a gap.
func AddShield(s domain.Streak, n int) domain.Streak {
	if n > 0 {
		s.ShieldsAvailable += n
	}
	return s
}
