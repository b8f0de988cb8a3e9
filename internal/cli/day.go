package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/momentum-hq/momentum/internal/domain"
)

func init() {
	dayCloseCmd.Flags().StringVar(&dayNote, "note", "", "A note about the day")
	dayCloseCmd.Flags().IntVarP(&dayEnergy, "energy", "e", 0, "How the day felt, 1-5")
	dayCmd.AddCommand(dayCloseCmd)
	dayCmd.AddCommand(dayLogCmd)
	rootCmd.AddCommand(dayCmd)
}

var (
	dayNote   string
	dayEnergy int
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Close out or review days",
}

var dayCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close today and advance the streak",
	Long: `Evaluate today against what was planned, record the rating, and
advance the daily streak. A day is rated once and the rating is final.`,
	RunE: runDayClose,
}

func runDayClose(cmd *cobra.Command, args []string) error {
	tr, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	eval, err := tr.CloseDay(dayNote, dayEnergy)
	if errors.Is(err, domain.ErrDayAlreadyRated) {
		fmt.Println("Today is already closed.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", eval.Message)
	fmt.Printf("  %d of %d tasks, %d XP earned\n", eval.TasksCompleted, eval.TasksPlanned, eval.XPEarned)

	streak, err := tr.Streak(domain.StreakDailyActivity)
	if err != nil {
		return err
	}
	fmt.Printf("  Streak: %s\n", formatStreak(streak))
	return nil
}

var dayLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent days",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		ratings, err := tr.DayLog(14)
		if err != nil {
			return err
		}
		if len(ratings) == 0 {
			fmt.Println("No days recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tRATING\tTASKS\tXP\tNOTE")
		for _, r := range ratings {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
				domain.DateKey(r.Date), r.Type, r.TasksCompleted, r.XPEarned, r.Note)
		}
		return w.Flush()
	},
}
