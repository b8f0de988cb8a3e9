package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/momentum-hq/momentum/internal/domain"
)

func init() {
	doneCmd.Flags().IntVarP(&doneMinutes, "minutes", "m", 0, "How long it actually took (0 = not tracked)")
	rootCmd.AddCommand(doneCmd)
}

var doneMinutes int

var doneCmd = &cobra.Command{
	Use:   "done <task>",
	Short: "Complete a task and collect the reward",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	tr, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	task, err := resolveTask(tr, args[0])
	if err != nil {
		return err
	}

	var actual *int
	if doneMinutes > 0 {
		actual = &doneMinutes
	}
	reward, err := tr.CompleteTask(task.ID, actual)
	if err != nil {
		return err
	}

	fmt.Printf("Done: %s\n", task.Title)
	fmt.Printf("  +%d XP", reward.Base)
	for _, b := range reward.Bonuses {
		fmt.Printf("  +%d %s", b.Amount, b.Reason)
	}
	fmt.Printf("  = %d XP\n", reward.Total)

	if reward.Loot != nil {
		switch reward.Loot.Type {
		case domain.LootStreakShield:
			fmt.Printf("  Drop! %s: %d streak shield(s)\n", reward.Loot.Rarity, reward.Loot.Value)
		case domain.LootXPBonus:
			fmt.Printf("  Drop! %s: +%d bonus XP\n", reward.Loot.Rarity, reward.Loot.Value)
		}
	}
	if reward.LevelUp != nil {
		fmt.Printf("  Level up! %d → %d\n", reward.LevelUp.From, reward.LevelUp.To)
	}
	return nil
}
