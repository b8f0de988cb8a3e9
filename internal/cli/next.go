package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/momentum-hq/momentum/internal/domain"
)

func init() {
	nextCmd.Flags().IntVarP(&nextEnergy, "energy", "e", 3, "Current energy, 1-5")
	nextCmd.Flags().IntVarP(&nextMinutes, "minutes", "m", 0, "Minutes available (0 = open-ended)")
	nextCmd.Flags().StringVar(&nextMood, "mood", "", "Mood: focused, scattered, creative, tired, anxious, motivated")
	nextCmd.Flags().StringVar(&nextLocation, "at", "", "Location: home, work, errand")
	nextCmd.Flags().IntVarP(&nextLimit, "limit", "n", 0, "Max suggestions (0 = configured default)")
	rootCmd.AddCommand(nextCmd)
}

var (
	nextEnergy   int
	nextMinutes  int
	nextMood     string
	nextLocation string
	nextLimit    int
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Suggest what to do right now",
	Long: `Rank the pending backlog against how you feel right now.
The highest scores go to tasks you can actually start in this moment,
not the ones that have been nagging the longest.`,
	RunE: runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	tr, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := domain.UserContext{
		Energy:           nextEnergy,
		AvailableMinutes: nextMinutes,
		Mood:             domain.Mood(nextMood),
		Location:         domain.Location(nextLocation),
	}
	suggestions, err := tr.Suggest(ctx, nextLimit)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Println("Nothing pending. Add a task with 'momentum add'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCORE\tTASK\tWHY")
	for _, s := range suggestions {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			shortID(s.Task.ID), s.Score, s.Task.Title, strings.Join(s.Reasons, ", "))
	}
	return w.Flush()
}
