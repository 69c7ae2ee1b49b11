package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskdeck/internal/collection"
	"github.com/jyang234/taskdeck/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `Lists tasks after applying the search, status filter, and sort
selectors. Defaults for sort, order, and status come from the display
section of the configuration.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("search", "", "Keep tasks whose title or description contains this text")
	listCmd.Flags().String("status", "", "Filter by status: all, pending, in_progress, completed")
	listCmd.Flags().String("sort", "", "Sort key: alphabetical, start_date, due_date, completion, priority")
	listCmd.Flags().String("order", "", "Sort order: asc, desc")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	view, err := viewFromFlags(cmd, a)
	if err != nil {
		return err
	}

	tasks := collection.ApplyView(a.store.Get(), view)
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tCATEGORY\tDUE\tPROGRESS")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d%%\n",
			shortID(t.ID), t.Title, t.Status, t.Priority, t.Category,
			t.DueDate.Format(dateLayout), t.CompletionPercentage)
	}
	return w.Flush()
}

// viewFromFlags merges the list selectors: explicit flags win over the
// configured display defaults.
func viewFromFlags(cmd *cobra.Command, a *app) (collection.View, error) {
	status := a.cfg.Display.Status
	if v, _ := cmd.Flags().GetString("status"); v != "" {
		status = v
	}
	if status != collection.StatusAll {
		if _, err := model.ParseStatus(status); err != nil {
			return collection.View{}, err
		}
	}

	sortFlag := a.cfg.Display.Sort
	if v, _ := cmd.Flags().GetString("sort"); v != "" {
		sortFlag = v
	}
	sortKey, err := collection.ParseSortKey(sortFlag)
	if err != nil {
		return collection.View{}, err
	}

	orderFlag := a.cfg.Display.Order
	if v, _ := cmd.Flags().GetString("order"); v != "" {
		orderFlag = v
	}
	order, err := collection.ParseSortOrder(orderFlag)
	if err != nil {
		return collection.View{}, err
	}

	search, _ := cmd.Flags().GetString("search")

	return collection.View{
		Search: search,
		Status: status,
		Sort:   sortKey,
		Order:  order,
	}, nil
}
