package config

// Config represents the ircparse tool configuration
type Config struct {
	Input struct {
		// TrimTrailingNewline drops a single final newline from the
		// input before batch parsing, since an empty last line is a
		// parse error.
		TrimTrailingNewline bool `yaml:"trim_trailing_newline"`
	} `yaml:"input"`

	Output struct {
		// Format selects how parsed messages are printed: "text"
		// (canonical wire form) or "json" (one object per line).
		Format string `yaml:"format"`
	} `yaml:"output"`

	Database struct {
		// Path to the SQLite archive. Empty disables archiving.
		Path string `yaml:"path"`
	} `yaml:"database"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	Load(filename string) (*Config, error)
	Validate(config *Config) error
}
