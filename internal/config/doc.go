// Package config defines the format-agnostic build-plan model, along with
// the Loader interface for reading plans from various sources.
//
// The config.Plan is the single source of truth for the engine package.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
