package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PlanPath is an .hcl plan file, or a directory of them.
	PlanPath string
	// ProjectDir is the absolute directory task-relative paths resolve
	// against.
	ProjectDir string
	// EnvFile optionally names a dotenv file layered over the process
	// environment when seeding the engine's base snapshot.
	EnvFile string

	LogFormat string
	LogLevel  string
	Workers   int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" {
		return nil, errors.New("PlanPath is a required configuration field and cannot be empty")
	}
	if cfg.ProjectDir == "" {
		return nil, errors.New("ProjectDir is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
