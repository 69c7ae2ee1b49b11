package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskdeck/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the collection with an exported JSON file",
	Long: `Reads a previously exported JSON document and replaces the current
collection with it. The existing collection is overwritten, so the command
asks for confirmation first.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func runImport(cmd *cobra.Command, args []string) error {
	tasks, err := storage.Import(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	current := a.store.Get()
	if yes, _ := cmd.Flags().GetBool("yes"); !yes && len(current) > 0 {
		fmt.Printf("Replace %d existing tasks with %d imported tasks? [y/N]: ", len(current), len(tasks))
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := a.store.Replace(tasks); err != nil {
		return err
	}

	fmt.Printf("Imported %d tasks from %s\n", len(tasks), args[0])
	return nil
}
