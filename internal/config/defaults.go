package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			Backend: "file",
			Dir:     "~/.taskdeck",
		},
		Display: DisplayConfig{
			Sort:   "due_date",
			Order:  "asc",
			Status: "all",
		},
	}
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# taskdeck configuration
version: "1"

# Persistence
storage:
  # "file" stores tasks.json in the data directory;
  # "sqlite" keeps a taskdeck.db key-value database there instead
  backend: file
  dir: ~/.taskdeck

# Default list view
display:
  # alphabetical | start_date | due_date | completion | priority
  sort: due_date
  # asc | desc
  order: asc
  # all | pending | in_progress | completed
  status: all
`
	return os.WriteFile(path, []byte(content), 0644)
}
