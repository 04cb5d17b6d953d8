// Package store persists a history of summarize/publish runs.
package store

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Run is one recorded pipeline run.
type Run struct {
	ID         int64
	VideoID    string
	VideoURL   string
	Title      string
	Model      string
	BlockCount int
	PageID     string
	CreatedAt  time.Time
}

// Store is the interface for run history persistence.
type Store interface {
	Record(ctx context.Context, run *Run) error
	List(ctx context.Context, limit int) ([]Run, error)
	Prune(ctx context.Context, maxAgeDays int) (int64, error)
	Close() error
}

// Config holds history storage configuration.
type Config struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxAgeDays int  `mapstructure:"max_age_days"` // Auto-prune after N days (0=never)
}

// DefaultConfig returns the default history configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		MaxAgeDays: 0,
	}
}

// GetDataDir returns the XDG data directory for vidsum.
// Uses $XDG_DATA_HOME if set, otherwise ~/.local/share
func GetDataDir() (string, error) {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "vidsum"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "vidsum"), nil
}

// DefaultDBPath returns the default history database path, creating the
// data directory if needed.
func DefaultDBPath() (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}
