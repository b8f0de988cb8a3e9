package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/momentum-hq/momentum/internal/app/tracker"
	"github.com/momentum-hq/momentum/internal/daemon"
	"github.com/momentum-hq/momentum/internal/domain"
)

// openTracker builds a tracker over the configured data directory.
func openTracker() (*tracker.Tracker, func(), error) {
	d, err := daemon.New()
	if err != nil {
		return nil, nil, err
	}
	return d.Tracker, d.Close, nil
}

// resolveTask turns a full UUID or a unique ID prefix into a task.
func resolveTask(tr *tracker.Tracker, ref string) (domain.Task, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return tr.Task(id)
	}

	tasks, err := tr.Tasks("")
	if err != nil {
		return domain.Task{}, err
	}
	var matches []domain.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Task{}, fmt.Errorf("no task matches %q: %w", ref, domain.ErrTaskNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.Task{}, fmt.Errorf("%q is ambiguous (%d matches): %w", ref, len(matches), domain.ErrInvalidArgument)
	}
}

// shortID is the display form of a task ID.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// formatStreak renders the visible streak with its shield count.
func formatStreak(s domain.Streak) string {
	out := fmt.Sprintf("%d day", s.Visible())
	if s.Visible() != 1 {
		out += "s"
	}
	if s.CurrentCount > domain.VisibleStreakCap {
		out += "+"
	}
	if s.ShieldsAvailable > 0 {
		out += fmt.Sprintf(" (%d shield", s.ShieldsAvailable)
		if s.ShieldsAvailable != 1 {
			out += "s"
		}
		out += ")"
	}
	return out
}
