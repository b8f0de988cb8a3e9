package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(deferCmd)
}

var startCmd = &cobra.Command{
	Use:   "start <task>",
	Short: "Mark a task in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		task, err := resolveTask(tr, args[0])
		if err != nil {
			return err
		}
		if _, err := tr.StartTask(task.ID); err != nil {
			return err
		}
		fmt.Printf("Started: %s\n", task.Title)
		return nil
	},
}

var skipCmd = &cobra.Command{
	Use:   "skip <task>",
	Short: "Skip a task (it won't count against the day)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		task, err := resolveTask(tr, args[0])
		if err != nil {
			return err
		}
		if _, err := tr.SkipTask(task.ID); err != nil {
			return err
		}
		fmt.Printf("Skipped: %s\n", task.Title)
		return nil
	},
}

var deferCmd = &cobra.Command{
	Use:   "defer <task>",
	Short: "Push a task off to later",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		task, err := resolveTask(tr, args[0])
		if err != nil {
			return err
		}
		if _, err := tr.DeferTask(task.ID); err != nil {
			return err
		}
		fmt.Printf("Deferred: %s\n", task.Title)
		return nil
	},
}
