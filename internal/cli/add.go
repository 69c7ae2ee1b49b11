package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskdeck/internal/collection"
	"github.com/jyang234/taskdeck/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Long: `Adds a task to the collection. The new task starts pending at 0%
progress. Dates are calendar dates (YYYY-MM-DD); the start date defaults
to today and the due date defaults to the start date.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("desc", "", "Task description")
	addCmd.Flags().String("start", "", "Start date (YYYY-MM-DD, default today)")
	addCmd.Flags().String("due", "", "Due date (YYYY-MM-DD, default start date)")
	addCmd.Flags().String("category", "other", "Category: work, personal, urgent, other")
	addCmd.Flags().String("priority", "medium", "Priority: high, medium, low")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, err := validateTitle(strings.Join(args, " "))
	if err != nil {
		return err
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if v, _ := cmd.Flags().GetString("start"); v != "" {
		if start, err = parseDate(v); err != nil {
			return err
		}
	}

	due := start
	if v, _ := cmd.Flags().GetString("due"); v != "" {
		if due, err = parseDate(v); err != nil {
			return err
		}
	}
	if err := validateDates(start, due); err != nil {
		return err
	}

	categoryFlag, _ := cmd.Flags().GetString("category")
	category, err := model.ParseCategory(categoryFlag)
	if err != nil {
		return err
	}

	priorityFlag, _ := cmd.Flags().GetString("priority")
	priority, err := model.ParsePriority(priorityFlag)
	if err != nil {
		return err
	}

	desc, _ := cmd.Flags().GetString("desc")

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	tasks, created := collection.Create(a.store.Get(), model.CreateInput{
		Title:       title,
		Description: desc,
		StartDate:   start,
		DueDate:     due,
		Category:    category,
		Priority:    priority,
	})
	if err := a.store.Replace(tasks); err != nil {
		return err
	}

	fmt.Printf("Added %s  %s (due %s)\n", shortID(created.ID), created.Title, due.Format(dateLayout))
	return nil
}
