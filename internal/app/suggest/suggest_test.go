package suggest_test

import (
	"errors"
	"testing"
	"time"

	"github.com/momentum-hq/momentum/internal/app/suggest"
	"github.com/momentum-hq/momentum/internal/domain"
)

var noon = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

// testTask builds a minimal valid pending task.
func testTask(t *testing.T, priority domain.Priority, energy, minutes int) domain.Task {
	t.Helper()
	return domain.NewTask("test task", priority, minutes, energy, noon)
}

// fixedRand replays a fixed sequence of uniform draws.
type fixedRand struct {
	seq []float64
	i   int
}

func (f *fixedRand) Float64() float64 {
	v := f.seq[f.i%len(f.seq)]
	f.i++
	return v
}

func TestScore_SpecimenScenario(t *testing.T) {
	// high priority (30) + exact energy match (25) + time fit (20)
	// + due within 24h (25) = at least 100 before mood/location/time-of-day.
	task := testTask(t, domain.PriorityHigh, 3, 20)
	due := noon.Add(18 * time.Hour)
	task.DueAt = &due

	ctx := domain.NewUserContext(noon)
	ctx.Energy = 3
	ctx.AvailableMinutes = 30

	sug, err := suggest.Score(task, ctx)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if sug.Score < 100 {
		t.Errorf("expected score >= 100, got %d (reasons: %v)", sug.Score, sug.Reasons)
	}
}

func TestScore_NeverNegative(t *testing.T) {
	// Worst case: someday priority, no due date, no matches anywhere.
	task := testTask(t, domain.PrioritySomeday, 5, 120)
	ctx := domain.NewUserContext(time.Date(2025, 7, 1, 23, 0, 0, 0, time.UTC))
	ctx.Energy = 1
	ctx.AvailableMinutes = 5
	ctx.Mood = domain.MoodTired
	ctx.Location = domain.LocationErrand

	sug, err := suggest.Score(task, ctx)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if sug.Score < 0 {
		t.Errorf("score must never be negative, got %d", sug.Score)
	}
	// Priority alone still contributes.
	if sug.Score < 5 {
		t.Errorf("expected at least the priority factor (5), got %d", sug.Score)
	}
}

func TestScore_EnergyDistanceCosts5PerUnit(t *testing.T) {
	// 23:00 so the night time-of-day predicate matches neither task.
	ctx := domain.NewUserContext(time.Date(2025, 7, 1, 23, 0, 0, 0, time.UTC))
	ctx.Energy = 3

	exact := testTask(t, domain.PriorityMedium, 3, 60)
	off2 := testTask(t, domain.PriorityMedium, 5, 60)

	se, err := suggest.Score(exact, ctx)
	if err != nil {
		t.Fatalf("score exact: %v", err)
	}
	so, err := suggest.Score(off2, ctx)
	if err != nil {
		t.Fatalf("score off2: %v", err)
	}
	if se.Score-so.Score != 10 {
		t.Errorf("2 units of energy distance should cost 10, got %d (exact %d, off %d)",
			se.Score-so.Score, se.Score, so.Score)
	}
}

func TestScore_EnergyFactorFloorsAtZero(t *testing.T) {
	ctx := domain.NewUserContext(noon)
	ctx.Energy = 5

	// Without context energy set, the factor is skipped entirely.
	base := testTask(t, domain.PriorityMedium, 1, 60)
	noEnergyCtx := domain.NewUserContext(noon)

	withFloor, err := suggest.Score(base, ctx) // |1-5| = 4 units → 25-20 = 5
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	without, err := suggest.Score(base, noEnergyCtx)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if withFloor.Score-without.Score != 5 {
		t.Errorf("4 units of distance should leave 5 points, got delta %d", withFloor.Score-without.Score)
	}
}

func TestScore_TimeFit(t *testing.T) {
	ctx := domain.NewUserContext(noon)
	ctx.AvailableMinutes = 30

	tests := []struct {
		minutes int
		delta   int // contribution of the time-fit factor
	}{
		{20, 20}, // fits entirely
		{30, 20}, // exactly fits
		{45, 10}, // within 1.5×
		{46, 0},  // too big
	}
	for _, tt := range tests {
		task := testTask(t, domain.PriorityMedium, 3, tt.minutes)
		withBudget, err := suggest.Score(task, ctx)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		noBudget := ctx
		noBudget.AvailableMinutes = 0
		without, err := suggest.Score(task, noBudget)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if got := withBudget.Score - without.Score; got != tt.delta {
			t.Errorf("time fit for %d min in 30 min budget: expected +%d, got +%d",
				tt.minutes, tt.delta, got)
		}
	}
}

func TestScore_DueDateUrgency(t *testing.T) {
	ctx := domain.NewUserContext(noon)
	tests := []struct {
		due   time.Time
		bonus int
	}{
		{noon.Add(-time.Hour), 30},          // overdue
		{noon.Add(12 * time.Hour), 25},      // within 24h
		{noon.Add(48 * time.Hour), 15},      // within 72h
		{noon.Add(6 * 24 * time.Hour), 5},   // within a week
		{noon.Add(30 * 24 * time.Hour), 0},  // far out
	}
	base := testTask(t, domain.PriorityMedium, 3, 60)
	baseline, err := suggest.Score(base, ctx)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for _, tt := range tests {
		task := base
		due := tt.due
		task.DueAt = &due
		sug, err := suggest.Score(task, ctx)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if got := sug.Score - baseline.Score; got != tt.bonus {
			t.Errorf("due %v: expected urgency +%d, got +%d", tt.due.Sub(noon), tt.bonus, got)
		}
	}
}

func TestScore_AnywhereTagAlwaysMatchesLocation(t *testing.T) {
	task := testTask(t, domain.PriorityMedium, 3, 20)
	task.Contexts = []domain.ContextTag{domain.TagAnywhere}

	for _, loc := range []domain.Location{domain.LocationHome, domain.LocationWork, domain.LocationErrand} {
		ctx := domain.NewUserContext(noon)
		ctx.Location = loc
		withLoc, err := suggest.Score(task, ctx)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		noLoc := domain.NewUserContext(noon)
		baseline, err := suggest.Score(task, noLoc)
		if err != nil {
			t.Fatalf("score: %v", err)
		}
		if withLoc.Score-baseline.Score != 15 {
			t.Errorf("anywhere tag at %s: expected +15, got +%d", loc, withLoc.Score-baseline.Score)
		}
	}
}

func TestScore_QuickWin(t *testing.T) {
	ctx := domain.NewUserContext(noon)
	quick := testTask(t, domain.PriorityLow, 3, 5)
	slow := testTask(t, domain.PriorityLow, 3, 6)

	sq, err := suggest.Score(quick, ctx)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	ss, err := suggest.Score(slow, ctx)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if sq.Score-ss.Score != 10 {
		t.Errorf("5-minute task should earn +10 quick win over 6-minute, got +%d", sq.Score-ss.Score)
	}
}

func TestScore_MoodPredicates(t *testing.T) {
	tests := []struct {
		name    string
		mood    domain.Mood
		mutate  func(*domain.Task)
		matches bool
	}{
		{"focused long task", domain.MoodFocused, func(tk *domain.Task) { tk.EstimatedMinutes = 30 }, true},
		{"focused short low-energy", domain.MoodFocused, func(tk *domain.Task) { tk.EstimatedMinutes = 10; tk.Energy = 2 }, false},
		{"scattered short", domain.MoodScattered, func(tk *domain.Task) { tk.EstimatedMinutes = 10 }, true},
		{"scattered long", domain.MoodScattered, func(tk *domain.Task) { tk.EstimatedMinutes = 30 }, false},
		{"creative tagged", domain.MoodCreative, func(tk *domain.Task) { tk.Tags = []string{"writing"} }, true},
		{"creative untagged", domain.MoodCreative, func(tk *domain.Task) {}, false},
		{"tired tiny", domain.MoodTired, func(tk *domain.Task) { tk.Energy = 1; tk.EstimatedMinutes = 10 }, true},
		{"tired heavy", domain.MoodTired, func(tk *domain.Task) { tk.Energy = 3; tk.EstimatedMinutes = 10 }, false},
		{"anxious small plain", domain.MoodAnxious, func(tk *domain.Task) { tk.EstimatedMinutes = 15 }, true},
		{"anxious creative", domain.MoodAnxious, func(tk *domain.Task) { tk.EstimatedMinutes = 15; tk.Tags = []string{"creative"} }, false},
		{"motivated high", domain.MoodMotivated, func(tk *domain.Task) { tk.Priority = domain.PriorityHigh }, true},
		{"motivated someday", domain.MoodMotivated, func(tk *domain.Task) { tk.Priority = domain.PrioritySomeday }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := testTask(t, domain.PriorityMedium, 3, 20)
			tt.mutate(&task)

			ctx := domain.NewUserContext(noon)
			ctx.Mood = tt.mood
			withMood, err := suggest.Score(task, ctx)
			if err != nil {
				t.Fatalf("score: %v", err)
			}
			plain := domain.NewUserContext(noon)
			baseline, err := suggest.Score(task, plain)
			if err != nil {
				t.Fatalf("score: %v", err)
			}
			delta := withMood.Score - baseline.Score
			if tt.matches && delta != 15 {
				t.Errorf("expected mood +15, got +%d", delta)
			}
			if !tt.matches && delta != 0 {
				t.Errorf("expected no mood bonus, got +%d", delta)
			}
		})
	}
}

func TestScore_InvalidEnergy(t *testing.T) {
	ctx := domain.NewUserContext(noon)

	task := testTask(t, domain.PriorityMedium, 3, 20)
	task.Energy = 0
	if _, err := suggest.Score(task, ctx); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("task energy 0: expected ErrInvalidArgument, got %v", err)
	}

	task.Energy = 3
	ctx.Energy = -1
	if _, err := suggest.Score(task, ctx); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("context energy -1: expected ErrInvalidArgument, got %v", err)
	}

	ctx.Energy = 6
	if _, err := suggest.Score(task, ctx); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("context energy 6: expected ErrInvalidArgument, got %v", err)
	}
}

func TestRank_SkipsNonPending(t *testing.T) {
	s := suggest.New(&fixedRand{seq: []float64{0.5}})
	ctx := domain.NewUserContext(noon)

	done := testTask(t, domain.PriorityCritical, 3, 20)
	done.Status = domain.StatusCompleted
	pending := testTask(t, domain.PriorityLow, 3, 20)

	got, err := s.Rank([]domain.Task{done, pending}, ctx, 10)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Task.ID != pending.ID {
		t.Error("expected the pending task, got the completed one")
	}
}

func TestRank_StableTiesKeepInputOrder(t *testing.T) {
	s := suggest.New(&fixedRand{seq: []float64{0.5}})
	ctx := domain.NewUserContext(noon)

	first := testTask(t, domain.PriorityMedium, 3, 60)
	first.Title = "first"
	second := testTask(t, domain.PriorityMedium, 3, 60)
	second.Title = "second"

	got, err := s.Rank([]domain.Task{first, second}, ctx, 10)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if got[0].Task.Title != "first" || got[1].Task.Title != "second" {
		t.Errorf("equal scores must keep input order, got %q then %q",
			got[0].Task.Title, got[1].Task.Title)
	}
}

func TestRank_ScatteredMoodShuffles(t *testing.T) {
	// A reversing draw sequence must flip the tie order of equal-score tasks.
	s := suggest.New(&fixedRand{seq: []float64{0}})
	ctx := domain.NewUserContext(noon)
	ctx.Mood = domain.MoodScattered

	first := testTask(t, domain.PriorityMedium, 3, 10)
	first.Title = "first"
	second := testTask(t, domain.PriorityMedium, 3, 10)
	second.Title = "second"

	got, err := s.Rank([]domain.Task{first, second}, ctx, 10)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if got[0].Task.Title != "second" {
		t.Errorf("expected shuffle to reorder ties, got %q first", got[0].Task.Title)
	}
}

func TestRank_LimitTruncates(t *testing.T) {
	s := suggest.New(&fixedRand{seq: []float64{0.5}})
	ctx := domain.NewUserContext(noon)

	var tasks []domain.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, testTask(t, domain.PriorityMedium, 3, 20))
	}
	got, err := s.Rank(tasks, ctx, 3)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(got))
	}
}
