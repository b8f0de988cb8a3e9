package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/momentum-hq/momentum/internal/app/reward"
	"github.com/momentum-hq/momentum/internal/domain"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show level, XP, and streak",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	tr, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	stats, err := tr.Stats()
	if err != nil {
		return err
	}
	streak, err := tr.Streak(domain.StreakDailyActivity)
	if err != nil {
		return err
	}
	msg, daysMissed, err := tr.WelcomeBack()
	if err != nil {
		return err
	}

	fmt.Printf("Level %d — %d XP", stats.Level, stats.TotalXP)
	if toNext := reward.XPToNextLevel(stats.TotalXP); toNext > 0 {
		fmt.Printf(" (%d to next level)", toNext)
	}
	fmt.Println()
	fmt.Printf("Streak: %s\n", formatStreak(streak))
	fmt.Printf("Tasks completed: %d", stats.TasksCompleted)
	if stats.PerfectDays > 0 {
		fmt.Printf("  Perfect days: %d", stats.PerfectDays)
	}
	fmt.Println()

	if daysMissed > 0 {
		fmt.Println()
		fmt.Println(msg.Message)
		if msg.SubMessage != "" {
			fmt.Println(msg.SubMessage)
		}
		if msg.SuggestedAction != "" {
			fmt.Printf("Try this: %s\n", msg.SuggestedAction)
		}
	}
	return nil
}
