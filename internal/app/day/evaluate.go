// Package day implements the Momentum day evaluator: classifying a
// finished day into one of five qualitative buckets, recomputing streaks
// from the day log, and producing non-punitive re-engagement copy after
// gaps of any length. Design rule: the user never sees loss framing,
// no matter how long they were away.
package day

import (
	"fmt"

	"github.com/momentum-hq/momentum/internal/domain"
)

// Classification thresholds, evaluated in order; first match wins.
const (
	perfectRate       = 0.9
	perfectMinPlanned = 3
	goodRate          = 0.7
	okayRate          = 0.4
	okayMinCompleted  = 2
)

// Evaluate classifies a finished day from the tasks that belonged to it.
// Planned excludes skipped tasks; zero planned tasks is a rate of 0, not
// an error, and falls through to the MVD and zero branches. mvd may be nil.
func Evaluate(tasksForDay []domain.Task, mvd *domain.MinimumViableDay) domain.DayEvaluation {
	eval := domain.DayEvaluation{}

	for _, t := range tasksForDay {
		switch t.Status {
		case domain.StatusSkipped:
			continue
		case domain.StatusCompleted:
			eval.TasksCompleted++
			eval.TasksPlanned++
			eval.XPEarned += t.BaseXP
		default:
			eval.TasksPlanned++
		}
	}

	if eval.TasksPlanned > 0 {
		eval.CompletionRate = float64(eval.TasksCompleted) / float64(eval.TasksPlanned)
	}
	eval.MVDAchieved = mvdSatisfied(tasksForDay, mvd)

	switch {
	case eval.CompletionRate >= perfectRate && eval.TasksPlanned >= perfectMinPlanned:
		eval.Type = domain.DayPerfect
	case eval.CompletionRate >= goodRate:
		eval.Type = domain.DayGood
	case eval.CompletionRate >= okayRate || eval.TasksCompleted >= okayMinCompleted:
		eval.Type = domain.DayOkay
	case eval.MVDAchieved || eval.TasksCompleted >= 1:
		eval.Type = domain.DayMinimumViable
	default:
		eval.Type = domain.DayZero
	}

	eval.Message = dayMessage(eval)
	return eval
}

// mvdSatisfied reports whether any MVD-listed task — or a task one of them
// triggers — was completed.
func mvdSatisfied(tasks []domain.Task, mvd *domain.MinimumViableDay) bool {
	if mvd == nil || len(mvd.TaskIDs) == 0 {
		return false
	}
	for _, t := range tasks {
		if t.Status != domain.StatusCompleted {
			continue
		}
		if mvd.Contains(t.ID.String()) {
			return true
		}
		if t.TriggeredByID != nil && mvd.Contains(t.TriggeredByID.String()) {
			return true
		}
	}
	return false
}

// dayMessage returns the encouraging copy for a classification. Zero days
// get the gentlest message of all — tomorrow is a clean slate.
func dayMessage(eval domain.DayEvaluation) string {
	switch eval.Type {
	case domain.DayPerfect:
		return fmt.Sprintf("Perfect day — %d of %d done. Days like this are rare; enjoy it.",
			eval.TasksCompleted, eval.TasksPlanned)
	case domain.DayGood:
		return fmt.Sprintf("Solid day: %d of %d done. That's real progress.",
			eval.TasksCompleted, eval.TasksPlanned)
	case domain.DayOkay:
		return fmt.Sprintf("You moved things forward today — %d done counts.",
			eval.TasksCompleted)
	case domain.DayMinimumViable:
		return "You kept the day alive. That's the whole job some days."
	default:
		return "Rest is part of the system too. Tomorrow starts fresh."
	}
}
