package extractsos

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CoordinatorRank is the rank that plans the run, receives the gathered
// results and writes the consolidated report. Fixed at 0.
const CoordinatorRank = 0

// Config is the configuration for a Runner.
type Config struct {
	// DataDir is the storage location holding the raw reach files. The
	// runner itself never touches it; it is handed to reach sources and
	// processors built from this config.
	DataDir string `yaml:"dataDir"`

	// LogDir is where the per-rank log streams ("<rank>.log") and the
	// coordinator report stream ("main.log") are created. May be empty when
	// explicit sinks are supplied via WithRankLog/WithMainLog.
	LogDir string `yaml:"logDir"`
}

// DefaultConfig returns a Config with conventional locations.
func DefaultConfig() Config {
	return Config{
		DataDir: "data",
		LogDir:  "logs",
	}
}

// Validate checks the configuration for structural problems.
//
// Returns:
//   - error: Wrapped ErrInvalidConfig describing the first problem found
func (c *Config) Validate() error {
	if c.DataDir == "" && c.LogDir == "" {
		return fmt.Errorf("%w: dataDir and logDir are both empty", ErrInvalidConfig)
	}

	return nil
}

// LoadConfig reads a YAML config file.
//
// Missing fields keep their zero values; callers typically layer the result
// over DefaultConfig.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: The parsed configuration
//   - error: Read or parse error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
