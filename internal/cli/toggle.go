package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskdeck/internal/collection"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a task's completion",
	Long: `Flips a task between completed and not completed. Completing a task
sets its progress to 100%, whatever it was before. Un-completing keeps the
recorded progress and relabels the task in_progress (or pending at 0%).`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	task, err := resolveTask(a.store.Get(), args[0])
	if err != nil {
		return err
	}

	tasks, _ := collection.ToggleComplete(a.store.Get(), task.ID)
	if err := a.store.Replace(tasks); err != nil {
		return err
	}

	updated, err := resolveTask(tasks, task.ID)
	if err != nil {
		return err
	}
	if updated.IsCompleted {
		fmt.Printf("Completed %s  %s\n", shortID(updated.ID), updated.Title)
	} else {
		fmt.Printf("Reopened %s  %s (%s, %d%%)\n",
			shortID(updated.ID), updated.Title, updated.Status, updated.CompletionPercentage)
	}
	return nil
}
