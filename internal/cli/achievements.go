package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"badges"},
	Short:   "Show unlocked and remaining achievements",
	RunE:    runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	tr, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	svc := tr.Achievements()
	unlocked, err := svc.ListUnlocked()
	if err != nil {
		return err
	}
	defs, err := svc.Definitions()
	if err != nil {
		return err
	}

	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, u := range unlocked {
		unlockedAt[u.ID] = u.UnlockedAt
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tNAME\tRARITY\tXP\tDESCRIPTION")
	for _, def := range defs {
		status := "locked"
		if at, ok := unlockedAt[def.ID]; ok {
			status = at.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			status, def.Name, def.Rarity, def.RewardXP, def.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d of %d unlocked\n", len(unlocked), svc.TotalCount())
	return nil
}
