package day

import (
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// ─── Pattern Detection ──────────────────────────────────────────────────────
// Advisory heuristics over the day log. Output is best-effort and bounded;
// callers should treat it as a hint, not a contract.

// BestWeekday returns the weekday with the highest average completed-task
// count across the log. The second return is false when the log holds
// fewer than two weeks of data — not enough signal to advise on.
func BestWeekday(ratings []domain.DayRating) (time.Weekday, bool) {
	if len(ratings) < 14 {
		return time.Sunday, false
	}

	var totals, counts [7]int
	for _, r := range ratings {
		wd := int(r.Date.Weekday())
		totals[wd] += r.TasksCompleted
		counts[wd]++
	}

	best := time.Sunday
	bestAvg := -1.0
	for wd := 0; wd < 7; wd++ {
		if counts[wd] == 0 {
			continue
		}
		avg := float64(totals[wd]) / float64(counts[wd])
		if avg > bestAvg {
			bestAvg = avg
			best = time.Weekday(wd)
		}
	}
	return best, bestAvg >= 0
}

// WeekendZeroPattern reports whether zero days cluster on weekends: at
// least half of the logged weekend days are zero days, with a minimum of
// two weekends of data. A true result suggests weekend expectations need
// lowering, not the user.
func WeekendZeroPattern(ratings []domain.DayRating) bool {
	weekendDays, weekendZeros := 0, 0
	for _, r := range ratings {
		wd := r.Date.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			continue
		}
		weekendDays++
		if r.Type == domain.DayZero {
			weekendZeros++
		}
	}
	if weekendDays < 4 {
		return false
	}
	return weekendZeros*2 >= weekendDays
}
