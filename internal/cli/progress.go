package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskdeck/internal/collection"
)

var progressCmd = &cobra.Command{
	Use:   "progress <id> <percent>",
	Short: "Set a task's completion percentage",
	Long: `Sets a task's progress to a whole percentage between 0 and 100.
Status follows the value: 0 is pending, 100 is completed, anything in
between is in_progress.`,
	Args: cobra.ExactArgs(2),
	RunE: runProgress,
}

func runProgress(cmd *cobra.Command, args []string) error {
	progress, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid progress %q (want a whole number)", args[1])
	}
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress %d outside [0,100]", progress)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	task, err := resolveTask(a.store.Get(), args[0])
	if err != nil {
		return err
	}

	tasks, _ := collection.UpdateProgress(a.store.Get(), task.ID, progress)
	if err := a.store.Replace(tasks); err != nil {
		return err
	}

	updated, err := resolveTask(tasks, task.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Progress %s  %s is now %d%% (%s)\n",
		shortID(updated.ID), updated.Title, updated.CompletionPercentage, updated.Status)
	return nil
}
