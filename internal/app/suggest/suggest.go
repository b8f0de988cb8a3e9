// Package suggest implements the Momentum suggestion scorer.
// Scoring is additive across independent capped factors; it is fully
// deterministic except for the "scattered" mood, which shuffles the
// candidate set for variety. Scores are never negative.
package suggest

import (
	"fmt"
	"sort"
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// Factor caps. Each factor contributes at most its cap; the total is the
// plain sum, so a task with no due date and no mood match can still score
// from priority and energy alone.
const (
	maxEnergyScore   = 25
	energyUnitCost   = 5
	fullTimeFit      = 20
	looseTimeFit     = 10
	locationScore    = 15
	moodScore        = 15
	timeOfDayScore   = 10
	quickWinScore    = 10
	quickWinMinutes  = 5
	looseFitFactor   = 1.5
	urgencyOverdue   = 30
	urgencyDay       = 25
	urgencyThreeDays = 15
	urgencyWeek      = 5
)

// priorityScores is the fixed priority factor lookup.
var priorityScores = map[domain.Priority]int{
	domain.PriorityCritical: 40,
	domain.PriorityHigh:     30,
	domain.PriorityMedium:   20,
	domain.PriorityLow:      10,
	domain.PrioritySomeday:  5,
}

// locationTags maps the user's location to the context tags doable there.
// "anywhere" matches every location.
var locationTags = map[domain.Location][]domain.ContextTag{
	domain.LocationHome:   {domain.TagHome, domain.TagAnywhere},
	domain.LocationWork:   {domain.TagWork, domain.TagComputer, domain.TagAnywhere},
	domain.LocationErrand: {domain.TagErrand, domain.TagPhone, domain.TagAnywhere},
}

// Score rates one pending task against the user's context. Deterministic:
// same task and context always produce the same score and reasons.
// Callers must pre-filter by status; energy levels outside their ranges are
// caller programming errors.
func Score(task domain.Task, ctx domain.UserContext) (domain.Suggestion, error) {
	if task.Energy < 1 || task.Energy > 5 {
		return domain.Suggestion{}, fmt.Errorf("task energy %d: %w", task.Energy, domain.ErrInvalidArgument)
	}
	if ctx.Energy < 0 || ctx.Energy > 5 {
		return domain.Suggestion{}, fmt.Errorf("context energy %d: %w", ctx.Energy, domain.ErrInvalidArgument)
	}

	total := 0
	var reasons []string
	add := func(points int, reason string) {
		if points <= 0 {
			return
		}
		total += points
		reasons = append(reasons, reason)
	}

	add(priorityScores[task.Priority], fmt.Sprintf("%s priority", task.Priority))

	// Energy match: exact = max, each unit of distance costs 5, floor 0.
	if ctx.Energy > 0 {
		diff := task.Energy - ctx.Energy
		if diff < 0 {
			diff = -diff
		}
		points := maxEnergyScore - diff*energyUnitCost
		if points > 0 {
			if diff == 0 {
				add(points, "matches your energy exactly")
			} else {
				add(points, "close to your energy level")
			}
		}
	}

	// Time fit: full credit inside the budget, half credit within 1.5×.
	if ctx.AvailableMinutes > 0 {
		switch {
		case task.EstimatedMinutes <= ctx.AvailableMinutes:
			add(fullTimeFit, fmt.Sprintf("fits your %d minutes", ctx.AvailableMinutes))
		case float64(task.EstimatedMinutes) <= float64(ctx.AvailableMinutes)*looseFitFactor:
			add(looseTimeFit, "a bit of a stretch for your time window")
		}
	}

	if ctx.Location != "" && matchesLocation(task, ctx.Location) {
		add(locationScore, fmt.Sprintf("doable at %s", ctx.Location))
	}

	if ctx.Mood != "" {
		if points, reason := moodMatch(task, ctx.Mood); points > 0 {
			add(points, reason)
		}
	}

	if points, reason := timeOfDayBonus(task, ctx.TimeOfDay); points > 0 {
		add(points, reason)
	}

	if task.DueAt != nil {
		add(urgencyBonus(*task.DueAt, ctx.Timestamp))
	}

	if task.EstimatedMinutes > 0 && task.EstimatedMinutes <= quickWinMinutes {
		add(quickWinScore, "quick win")
	}

	return domain.Suggestion{Task: task, Score: total, Reasons: reasons}, nil
}

// matchesLocation reports whether any of the task's context tags is doable
// at the given location. Tag "anywhere" always matches.
func matchesLocation(task domain.Task, loc domain.Location) bool {
	if task.HasContext(domain.TagAnywhere) {
		return true
	}
	for _, tag := range locationTags[loc] {
		if task.HasContext(tag) {
			return true
		}
	}
	return false
}

// urgencyBonus scores due-date pressure independently of priority.
func urgencyBonus(due, now time.Time) (int, string) {
	until := due.Sub(now)
	switch {
	case until < 0:
		return urgencyOverdue, "overdue"
	case until <= 24*time.Hour:
		return urgencyDay, "due within 24 hours"
	case until <= 72*time.Hour:
		return urgencyThreeDays, "due within 3 days"
	case until <= 7*24*time.Hour:
		return urgencyWeek, "due this week"
	default:
		return 0, ""
	}
}

// Suggester ranks candidate tasks. It holds the random source used for the
// scattered-mood shuffle; scoring itself stays deterministic.
type Suggester struct {
	rand domain.Rand
}

// New creates a suggester with the given random source.
func New(r domain.Rand) *Suggester {
	return &Suggester{rand: r}
}

// Rank scores the pending candidates and returns the top suggestions,
// highest score first. The sort is stable: ties keep input order, which is
// what makes the scattered-mood shuffle visible in the result. Non-pending
// tasks are skipped.
func (s *Suggester) Rank(tasks []domain.Task, ctx domain.UserContext, limit int) ([]domain.Suggestion, error) {
	candidates := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == domain.StatusPending {
			candidates = append(candidates, t)
		}
	}

	// Scattered mood: variety beats optimality, shuffle before scoring.
	if ctx.Mood == domain.MoodScattered {
		shuffle(candidates, s.rand)
	}

	suggestions := make([]domain.Suggestion, 0, len(candidates))
	for _, t := range candidates {
		sug, err := Score(t, ctx)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, sug)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// shuffle is a Fisher–Yates over the injected uniform source.
func shuffle(tasks []domain.Task, r domain.Rand) {
	for i := len(tasks) - 1; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}
}
