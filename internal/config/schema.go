package config

// Config represents the full taskdeck configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Storage configuration
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Default list view settings
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
}

// StorageConfig selects and locates the persistence backend
type StorageConfig struct {
	// Backend is "file" or "sqlite"
	Backend string `yaml:"backend" mapstructure:"backend"`

	// Dir is the data directory; a leading ~ expands to the home directory
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// DisplayConfig holds the default filter and sort selectors for list output
type DisplayConfig struct {
	Sort   string `yaml:"sort" mapstructure:"sort"`
	Order  string `yaml:"order" mapstructure:"order"`
	Status string `yaml:"status" mapstructure:"status"`
}
