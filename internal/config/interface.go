package config

import (
	"context"
)

// Loader is the interface for a format-specific plan loader.
type Loader interface {
	// Load reads plan files from the given path (a single file or a
	// directory searched recursively) and translates them into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Plan, error)
}
