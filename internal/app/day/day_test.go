package day_test

import (
	"strings"
	"testing"
	"time"

	"github.com/momentum-hq/momentum/internal/app/day"
	"github.com/momentum-hq/momentum/internal/domain"
)

var day1 = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

// dayTasks builds completed+pending tasks for an evaluation scenario.
func dayTasks(t *testing.T, completed, pending, skipped int) []domain.Task {
	t.Helper()
	var tasks []domain.Task
	for i := 0; i < completed; i++ {
		task := domain.NewTask("done", domain.PriorityMedium, 20, 3, day1)
		task.Status = domain.StatusCompleted
		done := day1
		task.CompletedAt = &done
		tasks = append(tasks, task)
	}
	for i := 0; i < pending; i++ {
		tasks = append(tasks, domain.NewTask("pending", domain.PriorityMedium, 20, 3, day1))
	}
	for i := 0; i < skipped; i++ {
		task := domain.NewTask("skipped", domain.PriorityMedium, 20, 3, day1)
		task.Status = domain.StatusSkipped
		tasks = append(tasks, task)
	}
	return tasks
}

func TestEvaluate_Classification(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		pending   int
		skipped   int
		want      domain.DayType
	}{
		{"perfect: 3 of 3", 3, 0, 0, domain.DayPerfect},
		{"perfect: 9 of 10", 9, 1, 0, domain.DayPerfect},
		{"good: 3 of 4", 3, 1, 0, domain.DayGood},
		{"not perfect under 3 planned: 2 of 2 is good", 2, 0, 0, domain.DayGood},
		{"okay by rate: 2 of 5", 2, 3, 0, domain.DayOkay},
		{"okay by count: 2 of 10", 2, 8, 0, domain.DayOkay},
		{"minimum viable: 1 of 10", 1, 9, 0, domain.DayMinimumViable},
		{"zero: nothing done", 0, 5, 0, domain.DayZero},
		{"zero: nothing planned", 0, 0, 0, domain.DayZero},
		{"skipped tasks excluded from planned", 3, 0, 4, domain.DayPerfect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := day.Evaluate(dayTasks(t, tt.completed, tt.pending, tt.skipped), nil)
			if eval.Type != tt.want {
				t.Errorf("expected %s, got %s (rate %.2f, completed %d, planned %d)",
					tt.want, eval.Type, eval.CompletionRate, eval.TasksCompleted, eval.TasksPlanned)
			}
		})
	}
}

func TestEvaluate_EmptyDayIsRateZeroNotError(t *testing.T) {
	eval := day.Evaluate(nil, nil)
	if eval.CompletionRate != 0 {
		t.Errorf("0/0 must be rate 0, got %f", eval.CompletionRate)
	}
	if eval.Type != domain.DayZero {
		t.Errorf("expected zero day, got %s", eval.Type)
	}
}

func TestEvaluate_MVDRescuesDayFromZero(t *testing.T) {
	// One MVD task completed and nothing else: minimum viable, not zero.
	mvdTask := domain.NewTask("meds", domain.PriorityMedium, 5, 1, day1)
	mvdTask.Status = domain.StatusCompleted
	done := day1
	mvdTask.CompletedAt = &done

	mvd := &domain.MinimumViableDay{TaskIDs: []string{mvdTask.ID.String()}}
	eval := day.Evaluate([]domain.Task{mvdTask}, mvd)
	if !eval.MVDAchieved {
		t.Error("expected MVD achieved")
	}
	if eval.Type != domain.DayMinimumViable {
		t.Errorf("expected minimum viable, got %s", eval.Type)
	}
}

func TestEvaluate_MVDSatisfiedBySubTask(t *testing.T) {
	parent := domain.NewTask("routine", domain.PriorityMedium, 5, 1, day1)
	child := domain.NewTask("routine step", domain.PriorityMedium, 5, 1, day1)
	child.Status = domain.StatusCompleted
	done := day1
	child.CompletedAt = &done
	parentID := parent.ID
	child.TriggeredByID = &parentID

	// Plenty of other pending tasks so only MVD keeps this from okay/zero.
	tasks := append(dayTasks(t, 0, 4, 0), child)
	mvd := &domain.MinimumViableDay{TaskIDs: []string{parent.ID.String()}}
	eval := day.Evaluate(tasks, mvd)
	if !eval.MVDAchieved {
		t.Error("completing a sub-task of an MVD task must satisfy the MVD")
	}
}

func TestEvaluate_XPEarnedSumsCompletedBaseXP(t *testing.T) {
	tasks := dayTasks(t, 2, 1, 0) // two medium tasks, base 25 each
	eval := day.Evaluate(tasks, nil)
	if eval.XPEarned != 50 {
		t.Errorf("expected 50 base XP earned, got %d", eval.XPEarned)
	}
}

func TestEvaluate_ExhaustiveAndExclusive(t *testing.T) {
	// Every (completed, planned) shape maps to exactly one type.
	for completed := 0; completed <= 6; completed++ {
		for pending := 0; pending <= 6; pending++ {
			eval := day.Evaluate(dayTasks(t, completed, pending, 1), nil)
			switch eval.Type {
			case domain.DayPerfect, domain.DayGood, domain.DayOkay,
				domain.DayMinimumViable, domain.DayZero:
			default:
				t.Fatalf("completed=%d pending=%d: unclassified day %q", completed, pending, eval.Type)
			}
			if eval.Message == "" {
				t.Fatalf("completed=%d pending=%d: missing message", completed, pending)
			}
		}
	}
}

func TestWelcomeBack_NeverLossFramed(t *testing.T) {
	for _, gap := range []int{0, 1, 2, 3, 5, 7, 14, 30, 100, 1000} {
		msg := day.WelcomeBack(gap)
		if msg.Message == "" || msg.SubMessage == "" || msg.SuggestedAction == "" {
			t.Errorf("gap %d: incomplete message %+v", gap, msg)
		}
		all := strings.ToLower(msg.Message + " " + msg.SubMessage + " " + msg.SuggestedAction)
		for _, banned := range []string{"lost", "lose", "broke", "broken", "fail", "ruin", "wasted"} {
			if strings.Contains(all, banned) {
				t.Errorf("gap %d: loss framing %q in %q", gap, banned, all)
			}
		}
	}
}

func TestWelcomeBack_EscalatesWithGap(t *testing.T) {
	// Distinct copy per breakpoint bucket.
	buckets := []int{0, 1, 3, 7, 30, 31}
	seen := map[string]int{}
	for _, gap := range buckets {
		msg := day.WelcomeBack(gap)
		if prev, dup := seen[msg.Message]; dup {
			t.Errorf("gaps %d and %d share copy %q", prev, gap, msg.Message)
		}
		seen[msg.Message] = gap
	}
}

func rating(t *testing.T, daysAgo int, typ domain.DayType, completed int) domain.DayRating {
	t.Helper()
	return domain.DayRating{
		Date:           day1.AddDate(0, 0, -daysAgo),
		Type:           typ,
		TasksCompleted: completed,
	}
}

func TestAnalyzeStreak_CountsConsecutiveActiveDays(t *testing.T) {
	ratings := []domain.DayRating{
		rating(t, 0, domain.DayGood, 3),
		rating(t, 1, domain.DayOkay, 2),
		rating(t, 2, domain.DayMinimumViable, 1),
		rating(t, 3, domain.DayZero, 0), // Break
		rating(t, 4, domain.DayPerfect, 5),
	}
	a := day.AnalyzeStreak(ratings, 0, day1)
	if a.CurrentStreak != 3 {
		t.Errorf("expected streak 3, got %d", a.CurrentStreak)
	}
	if a.IsStreakBroken {
		t.Error("activity today means the streak is not broken")
	}
}

func TestAnalyzeStreak_GapDetection(t *testing.T) {
	ratings := []domain.DayRating{
		rating(t, 3, domain.DayGood, 3),
		rating(t, 4, domain.DayOkay, 2),
	}
	a := day.AnalyzeStreak(ratings, 0, day1)
	if a.DaysSinceLastActivity != 3 {
		t.Errorf("expected 3 days since activity, got %d", a.DaysSinceLastActivity)
	}
	if !a.IsStreakBroken {
		t.Error("a 3-day gap breaks the streak")
	}
	if a.CanRecover {
		t.Error("no shields: cannot recover")
	}
	if a.RecoveryMessage == "" {
		t.Error("expected a recovery message")
	}
}

func TestAnalyzeStreak_RecoverableWithShields(t *testing.T) {
	ratings := []domain.DayRating{rating(t, 3, domain.DayGood, 3)}

	// Gap of 3 needs 2 shields.
	if a := day.AnalyzeStreak(ratings, 2, day1); !a.CanRecover {
		t.Error("2 shields should cover a 3-day gap")
	}
	if a := day.AnalyzeStreak(ratings, 1, day1); a.CanRecover {
		t.Error("1 shield cannot cover a 3-day gap")
	}
}

func TestAnalyzeStreak_EmptyLog(t *testing.T) {
	a := day.AnalyzeStreak(nil, 3, day1)
	if a.CurrentStreak != 0 {
		t.Errorf("expected streak 0 on empty log, got %d", a.CurrentStreak)
	}
	if !a.IsStreakBroken {
		t.Error("empty log counts as broken")
	}
}

func TestBestWeekday_NeedsTwoWeeksOfData(t *testing.T) {
	var ratings []domain.DayRating
	for i := 0; i < 10; i++ {
		ratings = append(ratings, rating(t, i, domain.DayGood, 3))
	}
	if _, ok := day.BestWeekday(ratings); ok {
		t.Error("under two weeks of data should not produce advice")
	}

	for i := 10; i < 21; i++ {
		ratings = append(ratings, rating(t, i, domain.DayGood, 3))
	}
	if _, ok := day.BestWeekday(ratings); !ok {
		t.Error("three weeks of data should produce advice")
	}
}

func TestBestWeekday_PicksHighestAverage(t *testing.T) {
	var ratings []domain.DayRating
	for i := 0; i < 28; i++ {
		r := rating(t, i, domain.DayOkay, 1)
		if r.Date.Weekday() == time.Wednesday {
			r.TasksCompleted = 6
		}
		ratings = append(ratings, r)
	}
	best, ok := day.BestWeekday(ratings)
	if !ok {
		t.Fatal("expected advice from four weeks of data")
	}
	if best != time.Wednesday {
		t.Errorf("expected Wednesday, got %s", best)
	}
}

func TestWeekendZeroPattern(t *testing.T) {
	var ratings []domain.DayRating
	for i := 0; i < 28; i++ {
		r := rating(t, i, domain.DayGood, 2)
		wd := r.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			r.Type = domain.DayZero
			r.TasksCompleted = 0
		}
		ratings = append(ratings, r)
	}
	if !day.WeekendZeroPattern(ratings) {
		t.Error("all-zero weekends should be detected")
	}

	// Active weekends: no pattern.
	for i := range ratings {
		ratings[i].Type = domain.DayGood
	}
	if day.WeekendZeroPattern(ratings) {
		t.Error("active weekends must not flag the pattern")
	}
}
