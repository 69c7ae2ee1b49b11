package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskdeck/internal/collection"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	s := collection.Aggregate(a.store.Get())

	fmt.Printf("Total:       %d\n", s.TotalTasks)
	fmt.Printf("Completed:   %d\n", s.CompletedTasks)
	fmt.Printf("In progress: %d\n", s.InProgressTasks)
	fmt.Printf("Pending:     %d\n", s.PendingTasks)
	fmt.Printf("Overdue:     %d\n", s.OverdueTasks)
	fmt.Printf("Done:        %d%%\n", s.CompletionPercentage)
	return nil
}
