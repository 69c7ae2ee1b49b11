package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskdeck/internal/collection"
	"github.com/jyang234/taskdeck/internal/model"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's fields",
	Long: `Edits the descriptive fields of a task. Only the flags you pass are
changed; progress and completion are managed by the progress and toggle
commands.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("desc", "", "New description")
	editCmd.Flags().String("start", "", "New start date (YYYY-MM-DD)")
	editCmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().String("category", "", "New category: work, personal, urgent, other")
	editCmd.Flags().String("priority", "", "New priority: high, medium, low")
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	task, err := resolveTask(a.store.Get(), args[0])
	if err != nil {
		return err
	}

	var fields collection.UpdateFields
	edited := false

	if cmd.Flags().Changed("title") {
		raw, _ := cmd.Flags().GetString("title")
		title, err := validateTitle(raw)
		if err != nil {
			return err
		}
		fields.Title = &title
		edited = true
	}
	if cmd.Flags().Changed("desc") {
		desc, _ := cmd.Flags().GetString("desc")
		fields.Description = &desc
		edited = true
	}

	// Date edits are validated against the dates the task will end up with.
	start, due := task.StartDate, task.DueDate
	if cmd.Flags().Changed("start") {
		raw, _ := cmd.Flags().GetString("start")
		parsed, err := parseDate(raw)
		if err != nil {
			return err
		}
		start = parsed
		fields.StartDate = &parsed
		edited = true
	}
	if cmd.Flags().Changed("due") {
		raw, _ := cmd.Flags().GetString("due")
		parsed, err := parseDate(raw)
		if err != nil {
			return err
		}
		due = parsed
		fields.DueDate = &parsed
		edited = true
	}
	if err := validateDates(start, due); err != nil {
		return err
	}

	if cmd.Flags().Changed("category") {
		raw, _ := cmd.Flags().GetString("category")
		category, err := model.ParseCategory(raw)
		if err != nil {
			return err
		}
		fields.Category = &category
		edited = true
	}
	if cmd.Flags().Changed("priority") {
		raw, _ := cmd.Flags().GetString("priority")
		priority, err := model.ParsePriority(raw)
		if err != nil {
			return err
		}
		fields.Priority = &priority
		edited = true
	}

	if !edited {
		return fmt.Errorf("nothing to edit: pass at least one field flag")
	}

	tasks, _ := collection.Update(a.store.Get(), task.ID, fields)
	if err := a.store.Replace(tasks); err != nil {
		return err
	}

	updated, err := resolveTask(tasks, task.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s  %s\n", shortID(updated.ID), updated.Title)
	return nil
}
