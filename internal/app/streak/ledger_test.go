package streak_test

import (
	"errors"
	"testing"
	"time"

	"github.com/momentum-hq/momentum/internal/app/streak"
	"github.com/momentum-hq/momentum/internal/domain"
)

var day1 = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func advance(t *testing.T, s domain.Streak, completed int, now time.Time) domain.Streak {
	t.Helper()
	out, err := streak.Advance(s, completed, 1, now)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	return out
}

func TestAdvance_FirstQualifyingDay(t *testing.T) {
	s := advance(t, domain.Streak{Kind: domain.StreakDailyActivity}, 2, day1)
	if s.CurrentCount != 1 {
		t.Errorf("expected count 1, got %d", s.CurrentCount)
	}
	if !domain.SameDay(s.StartedAt, day1) {
		t.Errorf("expected run to start today, got %v", s.StartedAt)
	}
	if s.LongestCount != 1 {
		t.Errorf("expected longest 1, got %d", s.LongestCount)
	}
}

func TestAdvance_ConsecutiveDaysMonotonic(t *testing.T) {
	var s domain.Streak
	for i := 0; i < 10; i++ {
		prev := s.CurrentCount
		s = advance(t, s, 1, day1.AddDate(0, 0, i))
		if s.CurrentCount < prev {
			t.Fatalf("day %d: count decreased %d → %d", i, prev, s.CurrentCount)
		}
	}
	if s.CurrentCount != 10 {
		t.Errorf("expected 10 after 10 qualifying days, got %d", s.CurrentCount)
	}
	if s.LongestCount != 10 {
		t.Errorf("expected longest 10, got %d", s.LongestCount)
	}
}

func TestAdvance_SameDayIdempotent(t *testing.T) {
	s := advance(t, domain.Streak{}, 1, day1)
	s = advance(t, s, 3, day1.Add(4*time.Hour))
	if s.CurrentCount != 1 {
		t.Errorf("same-day advance must not increment, got %d", s.CurrentCount)
	}
}

func TestAdvance_UnderMinimumLeavesStreakAtRisk(t *testing.T) {
	s := advance(t, domain.Streak{}, 1, day1)

	// Next day, nothing completed: neither advances nor breaks.
	after, err := streak.Advance(s, 0, 1, day1.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if after.CurrentCount != 1 {
		t.Errorf("under-minimum day must leave count unchanged, got %d", after.CurrentCount)
	}
	if !domain.SameDay(after.LastActivity, day1) {
		t.Error("under-minimum day must not refresh last activity")
	}
}

func TestAdvance_ShieldCoversGap(t *testing.T) {
	// Ledger: count 5, one shield, last activity 2 days ago. The single
	// missed day is covered: count 6, shield consumed.
	s := domain.Streak{
		CurrentCount:     5,
		LongestCount:     5,
		LastActivity:     day1,
		ShieldsAvailable: 1,
		StartedAt:        day1.AddDate(0, 0, -4),
	}
	s = advance(t, s, 1, day1.AddDate(0, 0, 2))

	if s.CurrentCount != 6 {
		t.Errorf("expected count 6, got %d", s.CurrentCount)
	}
	if s.ShieldsAvailable != 0 {
		t.Errorf("expected 0 shields left, got %d", s.ShieldsAvailable)
	}
	if s.ShieldsUsed != 1 {
		t.Errorf("expected 1 shield used, got %d", s.ShieldsUsed)
	}
	if s.LongestCount != 6 {
		t.Errorf("expected longest 6, got %d", s.LongestCount)
	}
}

func TestAdvance_ShieldConservation(t *testing.T) {
	s := domain.Streak{
		CurrentCount:     3,
		LastActivity:     day1,
		ShieldsAvailable: 5,
		ShieldsUsed:      2,
	}
	before := s.ShieldsAvailable + s.ShieldsUsed

	// Gap of 3 missed days, consumes 3 shields.
	s = advance(t, s, 1, day1.AddDate(0, 0, 4))
	if got := s.ShieldsAvailable + s.ShieldsUsed; got != before {
		t.Errorf("shield conservation violated: %d before, %d after", before, got)
	}
	if s.ShieldsUsed != 5 {
		t.Errorf("expected 5 shields used, got %d", s.ShieldsUsed)
	}
	if s.CurrentCount != 4 {
		t.Errorf("expected count 4, got %d", s.CurrentCount)
	}
}

func TestAdvance_GapBeyondShieldsResets(t *testing.T) {
	// Count 5, no shields, 3-day gap, today qualifies: restart at 1.
	s := domain.Streak{
		CurrentCount: 5,
		LongestCount: 5,
		LastActivity: day1,
		StartedAt:    day1.AddDate(0, 0, -4),
	}
	today := day1.AddDate(0, 0, 4)
	s = advance(t, s, 1, today)

	if s.CurrentCount != 1 {
		t.Errorf("expected restart at 1, got %d", s.CurrentCount)
	}
	if !domain.SameDay(s.StartedAt, today) {
		t.Errorf("expected startedAt reset to today, got %v", s.StartedAt)
	}
	if s.LongestCount != 5 {
		t.Errorf("longest must be preserved at 5, got %d", s.LongestCount)
	}
}

func TestAdvance_GapWithNoQualifyingTodayResetsToZero(t *testing.T) {
	s := domain.Streak{CurrentCount: 5, LastActivity: day1}
	after, err := streak.Advance(s, 0, 1, day1.AddDate(0, 0, 4))
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if after.CurrentCount != 0 {
		t.Errorf("expected reset to 0, got %d", after.CurrentCount)
	}
}

func TestAdvance_InsufficientShieldsStillResets(t *testing.T) {
	// 2 shields cannot cover 3 missed days — no shields are consumed.
	s := domain.Streak{
		CurrentCount:     8,
		LastActivity:     day1,
		ShieldsAvailable: 2,
		ShieldsUsed:      1,
	}
	s = advance(t, s, 1, day1.AddDate(0, 0, 4))
	if s.CurrentCount != 1 {
		t.Errorf("expected reset to 1, got %d", s.CurrentCount)
	}
	if s.ShieldsAvailable != 2 || s.ShieldsUsed != 1 {
		t.Errorf("shields must be untouched on reset, got %d/%d", s.ShieldsAvailable, s.ShieldsUsed)
	}
}

func TestAdvance_MinimumRequired(t *testing.T) {
	s := advance(t, domain.Streak{}, 3, day1)

	// Minimum of 3: two completions the next day do not advance.
	after, err := streak.Advance(s, 2, 3, day1.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if after.CurrentCount != 1 {
		t.Errorf("2 of 3 required must not advance, got %d", after.CurrentCount)
	}

	after, err = streak.Advance(s, 3, 3, day1.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if after.CurrentCount != 2 {
		t.Errorf("3 of 3 required must advance, got %d", after.CurrentCount)
	}
}

func TestAdvance_FutureLastActivityRejected(t *testing.T) {
	s := domain.Streak{CurrentCount: 1, LastActivity: day1.AddDate(0, 0, 2)}
	_, err := streak.Advance(s, 1, 1, day1)
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for future last activity, got %v", err)
	}
}

func TestVisible_CappedAtSeven(t *testing.T) {
	for count, want := range map[int]int{0: 0, 1: 1, 7: 7, 8: 7, 100: 7} {
		s := domain.Streak{CurrentCount: count}
		if got := s.Visible(); got != want {
			t.Errorf("visible(%d) = %d, want %d", count, got, want)
		}
	}
}

func TestAddShield_AdditiveOnly(t *testing.T) {
	s := domain.Streak{ShieldsAvailable: 1}
	s = streak.AddShield(s, 2)
	if s.ShieldsAvailable != 3 {
		t.Errorf("expected 3 shields, got %d", s.ShieldsAvailable)
	}
	s = streak.AddShield(s, -5)
	if s.ShieldsAvailable != 3 {
		t.Errorf("negative grants must be ignored, got %d", s.ShieldsAvailable)
	}
}
