// Package config provides configuration, environment loading and data
// directory management for the storefront application.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// HomeEnv overrides the data directory when set.
const HomeEnv = "STOREFRONT_HOME"

// Backend names accepted by the --storage flag.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the runtime configuration resolved from flags and environment.
type Config struct {
	DataDir string
	Backend string
	API     APIConfig
}

// Load resolves the configuration for the given backend. An empty backend
// selects the file backend.
func Load(backend string) (*Config, error) {
	dir, err := GetDataDir()
	if err != nil {
		return nil, err
	}

	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		backend = BackendFile
	}
	switch backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	return &Config{
		DataDir: dir,
		Backend: backend,
		API:     LoadAPIConfig(),
	}, nil
}

// GetDataDir returns the path to the storefront data directory
func GetDataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".storefront"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist
func EnsureDataDir() error {
	dir, err := GetDataDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// LoadEnv loads variables from the given .env files into the process
// environment. Variables already set are left alone. Missing files are
// ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return err
		}
		existing = append(existing, f)
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("loading env files: %w", err)
	}
	return nil
}
