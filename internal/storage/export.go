package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jyang234/taskdeck/internal/model"
)

// ExportFilename returns the default export file name for the given day,
// e.g. "taskdeck-export-2026-09-01.json".
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("taskdeck-export-%s.json", now.Format("2006-01-02"))
}

// Export writes the collection to path as an indented JSON document using
// the same schema as the persisted slot. Stored state is not touched.
func Export(tasks []model.Task, path string) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// Import parses an export document and validates every record plus the
// collection-wide id uniqueness invariant. Unlike Load, a malformed
// document here is an explicit user action and is reported as an error.
func Import(path string) ([]model.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("invalid import document: %w", err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("invalid import document: duplicate task id %s", t.ID)
		}
		seen[t.ID] = true
	}
	return tasks, nil
}
