package suggest

import "github.com/momentum-hq/momentum/internal/domain"

// Mood predicates. Each mood favors a different shape of task; a match is
// worth the full mood score, a miss is worth nothing.
//
//	focused   → long (≥25 min) or high-energy (≥4) tasks
//	scattered → short (≤10 min) tasks (the candidate set is also shuffled)
//	creative  → tasks tagged creative/brainstorm/writing/design
//	tired     → energy 1 and ≤10 min
//	anxious   → ≤15 min and not tagged creative
//	motivated → critical or high priority
func moodMatch(task domain.Task, mood domain.Mood) (int, string) {
	switch mood {
	case domain.MoodFocused:
		if task.EstimatedMinutes >= 25 || task.Energy >= 4 {
			return moodScore, "good for deep focus"
		}
	case domain.MoodScattered:
		if task.EstimatedMinutes <= 10 {
			return moodScore, "small enough for a scattered mind"
		}
	case domain.MoodCreative:
		if hasAnyTag(task, "creative", "brainstorm", "writing", "design") {
			return moodScore, "feeds your creative mood"
		}
	case domain.MoodTired:
		if task.Energy == 1 && task.EstimatedMinutes <= 10 {
			return moodScore, "gentle enough for low energy"
		}
	case domain.MoodAnxious:
		if task.EstimatedMinutes <= 15 && !task.HasTag("creative") {
			return moodScore, "small and concrete"
		}
	case domain.MoodMotivated:
		if task.Priority == domain.PriorityCritical || task.Priority == domain.PriorityHigh {
			return moodScore, "ride the motivation on something big"
		}
	}
	return 0, ""
}

// timeOfDayBonus favors tasks that suit the current part of the day:
// hard work in the morning, steady work in the afternoon, winding down in
// the evening, and only small low-energy items at night.
func timeOfDayBonus(task domain.Task, tod domain.TimeOfDay) (int, string) {
	switch tod {
	case domain.Morning:
		if task.Energy >= 4 {
			return timeOfDayScore, "tackle hard things while fresh"
		}
	case domain.Afternoon:
		if task.Energy == 2 || task.Energy == 3 {
			return timeOfDayScore, "steady afternoon work"
		}
	case domain.Evening:
		if task.Energy <= 2 {
			return timeOfDayScore, "light enough for the evening"
		}
	case domain.Night:
		if task.Energy == 1 && task.EstimatedMinutes <= 15 {
			return timeOfDayScore, "small enough for late night"
		}
	}
	return 0, ""
}

func hasAnyTag(task domain.Task, tags ...string) bool {
	for _, tag := range tags {
		if task.HasTag(tag) {
			return true
		}
	}
	return false
}
