package day

import (
	"sort"
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// AnalyzeStreak recomputes a streak from the append-only day log,
// independently of the ledger's own state: walk the ratings most-recent
// first, counting consecutive non-zero days, and stop at the first break.
// Recovery is possible while the shields on hand cover the missed days.
func AnalyzeStreak(ratings []domain.DayRating, shieldsAvailable int, now time.Time) domain.StreakAnalysis {
	analysis := domain.StreakAnalysis{}

	sorted := make([]domain.DayRating, len(ratings))
	copy(sorted, ratings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	// Find the most recent active (non-zero) day.
	lastActive := -1
	for i, r := range sorted {
		if r.Type != domain.DayZero {
			lastActive = i
			break
		}
	}
	if lastActive == -1 {
		analysis.DaysSinceLastActivity = len(sorted) // Bounded best-effort: no activity on record
		analysis.IsStreakBroken = true
		analysis.RecoveryMessage = WelcomeBack(analysis.DaysSinceLastActivity).Message
		return analysis
	}

	analysis.DaysSinceLastActivity = domain.DaysBetween(sorted[lastActive].Date, now)

	// Count consecutive non-zero days backwards from the last active one.
	count := 1
	prev := sorted[lastActive].Date
	for _, r := range sorted[lastActive+1:] {
		if r.Type == domain.DayZero {
			break
		}
		if domain.DaysBetween(r.Date, prev) > 1 {
			break
		}
		count++
		prev = r.Date
	}
	analysis.CurrentStreak = count

	gap := analysis.DaysSinceLastActivity
	analysis.IsStreakBroken = gap > 1
	analysis.CanRecover = gap > 1 && shieldsAvailable >= gap-1
	analysis.RecoveryMessage = WelcomeBack(gap).Message
	return analysis
}
