package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskdeck/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks to a JSON file",
	Long: `Writes the full collection to a JSON file in the stored schema.
The stored data is not modified; the default filename embeds today's date.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "Output path (default taskdeck-export-<date>.json)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		path = storage.ExportFilename(time.Now())
	}

	tasks := a.store.Get()
	if err := storage.Export(tasks, path); err != nil {
		return err
	}

	fmt.Printf("Exported %d tasks to %s\n", len(tasks), path)
	return nil
}
