package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/momentum-hq/momentum/internal/app/tracker"
	"github.com/momentum-hq/momentum/internal/domain"
)

func init() {
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority: critical, high, medium, low, someday")
	addCmd.Flags().IntVarP(&addMinutes, "minutes", "m", 15, "Estimated minutes")
	addCmd.Flags().IntVarP(&addEnergy, "energy", "e", 2, "Energy required, 1-5")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (2006-01-02 or 2006-01-02T15:04)")
	addCmd.Flags().StringSliceVarP(&addContexts, "context", "c", nil, "Context tags: home, work, errand, anywhere, phone, computer")
	addCmd.Flags().StringSliceVarP(&addTags, "tag", "t", nil, "Free-form tags")
	rootCmd.AddCommand(addCmd)
}

var (
	addPriority string
	addMinutes  int
	addEnergy   int
	addDue      string
	addContexts []string
	addTags     []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	tr, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	title := ""
	for i, a := range args {
		if i > 0 {
			title += " "
		}
		title += a
	}

	in := tracker.TaskInput{
		Title:            title,
		Priority:         domain.Priority(addPriority),
		EstimatedMinutes: addMinutes,
		Energy:           addEnergy,
		Tags:             addTags,
	}
	for _, c := range addContexts {
		in.Contexts = append(in.Contexts, domain.ContextTag(c))
	}
	if addDue != "" {
		due, err := parseWhen(addDue)
		if err != nil {
			return err
		}
		in.DueAt = &due
	}

	task, err := tr.AddTask(in)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s  %s (%s, ~%dm, +%d XP on completion)\n",
		shortID(task.ID), task.Title, task.Priority, task.EstimatedMinutes, task.BaseXP)
	return nil
}

// parseWhen accepts a date or a date with time, in local time.
func parseWhen(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			if layout == "2006-01-02" {
				// A bare date means end of that day.
				t = t.Add(23*time.Hour + 59*time.Minute)
			}
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date: %w", s, domain.ErrInvalidArgument)
}
