package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/momentum-hq/momentum/internal/domain"
)

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "pending", "Status filter: pending, in_progress, completed, skipped, deferred, all")
	rootCmd.AddCommand(listCmd)
}

var listStatus string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	tr, closeFn, err := openTracker()
	if err != nil {
		return err
	}
	defer closeFn()

	status := domain.TaskStatus(listStatus)
	if listStatus == "all" {
		status = ""
	}
	tasks, err := tr.Tasks(status)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks. Add one with 'momentum add'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tEST\tDUE\tTITLE")
	for _, t := range tasks {
		due := "-"
		if t.DueAt != nil {
			due = t.DueAt.Local().Format("Jan 2 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dm\t%s\t%s\n",
			shortID(t.ID), t.Status, t.Priority, t.EstimatedMinutes, due, t.Title)
	}
	return w.Flush()
}
